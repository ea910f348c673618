package common

const (
	// FieldWidth and FieldHeight are the play-field size in world units.
	FieldWidth  = 800
	FieldHeight = 800

	// Gravity is the per-tick downward acceleration applied to hostiles.
	Gravity = 1.0

	// TicksPerSecond is the fixed simulation rate.
	TicksPerSecond = 60
)

// Field spans the whole play-field.
var Field = AABB{MinX: 0, MinY: 0, MaxX: FieldWidth, MaxY: FieldHeight}
