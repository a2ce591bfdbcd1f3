package layout

type Unit uint8

const (
	UnitAuto Unit = iota
	UnitPx
	UnitPercent
)

// Dimension is a length in pixels, a percentage of the parent's content box, or auto.
type Dimension struct {
	Value float64
	Unit  Unit
}

var Auto = Dimension{}

func Px(v float64) Dimension  { return Dimension{Value: v, Unit: UnitPx} }
func Pct(v float64) Dimension { return Dimension{Value: v, Unit: UnitPercent} }

func (d Dimension) IsAuto() bool { return d.Unit == UnitAuto }

// Resolve returns the length in pixels relative to parent, false for auto.
func (d Dimension) Resolve(parent float64) (float64, bool) {
	switch d.Unit {
	case UnitPx:
		return d.Value, true
	case UnitPercent:
		return d.Value / 100 * parent, true
	default:
		return 0, false
	}
}

type Edges struct {
	Top, Right, Bottom, Left float64
}

func All(v float64) Edges { return Edges{v, v, v, v} }

func (e Edges) Horizontal() float64 { return e.Left + e.Right }
func (e Edges) Vertical() float64   { return e.Top + e.Bottom }

type Display uint8

const (
	DisplayFlex Display = iota
	DisplayNone
)

type Direction uint8

const (
	Row Direction = iota
	Column
)

type Position uint8

const (
	Relative Position = iota
	Absolute
)

// Style is the subset of style an Engine needs.
type Style struct {
	Display   Display
	Direction Direction
	Position  Position

	Width, Height Dimension

	Padding Edges
	Margin  Edges
	Gap     float64
	Grow    float64

	// offsets from the parent's content box, only used by absolute nodes
	Left, Top float64
}
