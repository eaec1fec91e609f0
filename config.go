package snapdragon

// Config holds the engine-wide interaction options. A new Engine starts
// with DefaultConfig; adjust with Engine.SetConfig, and all documents
// attached to the engine see changes immediately.
type Config struct {
	// BringToFront raises a dragged element above everything dragged before
	// it by assigning a fresh stacking value on every drag start.
	BringToFront bool

	// SnapBack animation parameters.
	SnapBackDuration float64
	SnapBackEasing   string

	// SnapTo animation parameters.
	SnapToDuration float64
	SnapToEasing   string

	// ResetOnSceneUnload clears sessions, constraints, handlers, and locks
	// for a document when its scene unloads.
	ResetOnSceneUnload bool

	// AutoSnap is the default for declaratively loaded constraints: when a
	// scene becomes ready, elements are immediately repositioned into
	// compliance with their constraint spec. Individual elements may
	// override it with the drag-auto-snap attribute.
	AutoSnap bool
}

// DefaultConfig returns the initial options of a freshly constructed Engine.
func DefaultConfig() Config {
	return Config{
		BringToFront:     true,
		SnapBackDuration: 0.25,
		SnapBackEasing:   "quad-out",
		SnapToDuration:   0.25,
		SnapToEasing:     "quad-out",
	}
}
