package engine

// System is an interface that all systems must implement
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update()
}
