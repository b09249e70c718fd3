package sim

// ImpactKind tells what a body hit.
type ImpactKind uint8

const (
	ImpactWall ImpactKind = iota
	ImpactFloor
	ImpactBody
)

func (k ImpactKind) String() string {
	switch k {
	case ImpactWall:
		return "wall"
	case ImpactFloor:
		return "floor"
	case ImpactBody:
		return "body"
	}
	return "unknown"
}

// Impact records a bounce that happened during a frame. Speed is the closing
// speed along the contact normal before the bounce was applied.
type Impact struct {
	Body  BodyId
	Other BodyId
	Kind  ImpactKind
	Speed float64
}
