package core

// Entity is a stable handle into the World arenas
// Zero is never issued and means "none"
type Entity uint64

// Valid reports whether the handle refers to an issued entity
func (e Entity) Valid() bool {
	return e != 0
}
