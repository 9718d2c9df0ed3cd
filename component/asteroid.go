package component

// AsteroidComponent marks a destructible rock
// Category 1 is terminal; larger categories split on destruction
type AsteroidComponent struct {
	Category int
}
