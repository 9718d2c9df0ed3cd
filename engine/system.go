package engine

// System is a unit of per-tick logic
// Systems run sequentially in ascending Priority under the world update lock
type System interface {
	Update()
	Priority() int
	Name() string
}
