package parameter

// Path following
const (
	// AgentSpeed is the constant travel speed in world units per second
	AgentSpeed = 10.0

	// ArrivalTolerance is the distance below which a waypoint counts as reached
	ArrivalTolerance = 0.1

	// GroundY is the height of the plane clicks and target positions are projected onto
	GroundY = 0.0
)

// Navmesh queries
const (
	// NavSamePointEpsilon is the horizontal distance at which from and to are the same point
	NavSamePointEpsilon = 1e-6

	// NavEdgeEpsilon absorbs float error on triangle edges in containment tests
	NavEdgeEpsilon = 1e-9

	// RayParallelEpsilon rejects rays nearly parallel to the ground plane
	RayParallelEpsilon = 1e-6
)
