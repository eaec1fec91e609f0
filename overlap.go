package snapdragon

// bestDropTarget returns the candidate whose box overlaps the dragged box
// with the strictly largest area, or nil when no candidate intersects.
// Equal areas keep the first candidate encountered in enumeration order.
// The dragged element itself is never a candidate.
func bestDropTarget(box Rect, dragged Element, candidates []Element, boxOf func(Element) Rect) Element {
	var best Element
	bestArea := 0.0
	for _, cand := range candidates {
		if cand == dragged {
			continue
		}
		area := box.OverlapArea(boxOf(cand))
		if area > bestArea {
			best = cand
			bestArea = area
		}
	}
	return best
}
