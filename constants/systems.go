package constants

// System priorities, lower runs first within a tick
// Pending releases resolve before animation so a drop and its transition start on the same tick
const (
	PriorityDrag      = 10
	PriorityFloat     = 20
	PriorityAnimation = 30
	PriorityQueue     = 40
)
