package gridworld

import "fmt"

// Symbol is a single terrain marker, e.g. "🌾". Symbols are strings because
// most terrain glyphs do not fit in one byte.
type Symbol string

// Position addresses a cell as (Row, Col). All internal arithmetic uses it.
type Position struct {
	Row, Col int
}

// Add returns p shifted by o.
func (p Position) Add(o Offset) Position {
	return Position{Row: p.Row + o.DRow, Col: p.Col + o.DCol}
}

// Sub returns the offset leading from q to p.
func (p Position) Sub(q Position) Offset {
	return Offset{DRow: p.Row - q.Row, DCol: p.Col - q.Col}
}

// Point converts back to caller convention (X=Col, Y=Row).
func (p Position) Point() Point {
	return Point{X: p.Col, Y: p.Row}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Point addresses a cell in caller convention: X is the column, Y the row.
type Point struct {
	X, Y int
}

// Position transposes a caller Point into an internal (Row, Col) Position.
// This is the only place the two conventions meet.
func (pt Point) Position() Position {
	return Position{Row: pt.Y, Col: pt.X}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%d,%d)", pt.X, pt.Y)
}

// Offset is a single-step displacement (DRow, DCol).
type Offset struct {
	DRow, DCol int
}

// The four cardinal moves and the zero arrival marker.
var (
	Right   = Offset{DRow: 0, DCol: 1}
	Left    = Offset{DRow: 0, DCol: -1}
	Up      = Offset{DRow: -1, DCol: 0}
	Down    = Offset{DRow: 1, DCol: 0}
	Arrived = Offset{}
)

// IsCardinal reports whether o is one of Right, Left, Up, Down.
func (o Offset) IsCardinal() bool {
	return abs(o.DRow)+abs(o.DCol) == 1
}

// Name returns the direction name of o ("right", "left", "up", "down",
// "arrived") or its numeric form for anything else.
func (o Offset) Name() string {
	switch o {
	case Right:
		return "right"
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	case Arrived:
		return "arrived"
	}
	return o.String()
}

func (o Offset) String() string {
	return fmt.Sprintf("(%d,%d)", o.DRow, o.DCol)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
