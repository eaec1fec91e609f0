// Package ecs provides ECS adapters for snapdragon.
package ecs
