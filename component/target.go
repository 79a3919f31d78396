package component

// TargetComponent is an operator-selectable destination
// Selection persists across simulation runs
type TargetComponent struct {
	Label    string
	Selected bool

	// Size is the box footprint (x, y, z) used for display
	SizeX, SizeY, SizeZ float64
}
