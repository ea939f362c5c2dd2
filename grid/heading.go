package grid

// Heading is the direction a traveller faces, independent of position.
//
// Values are ordered clockwise starting at Up so that a quarter turn is a
// single modular step.
type Heading uint8

const (
	// Up faces decreasing row.
	Up Heading = iota
	// Right faces increasing column.
	Right
	// Down faces increasing row.
	Down
	// Left faces decreasing column.
	Left

	headingCount = 4
)

// Headings lists every heading in clockwise order from Up.
var Headings = [headingCount]Heading{Up, Right, Down, Left}

// headingDeltas holds the (dRow, dCol) step for each heading.
var headingDeltas = [headingCount][2]int{
	Up:    {-1, 0},
	Right: {0, 1},
	Down:  {1, 0},
	Left:  {0, -1},
}

// Clockwise rotates h by 90° clockwise: Up→Right→Down→Left→Up.
func (h Heading) Clockwise() Heading {
	return (h + 1) % headingCount
}

// CounterClockwise rotates h by 90° counter-clockwise: Up→Left→Down→Right→Up.
func (h Heading) CounterClockwise() Heading {
	return (h + headingCount - 1) % headingCount
}

// Opposite returns the heading after a full reversal.
func (h Heading) Opposite() Heading {
	return (h + 2) % headingCount
}

// TurnsTo reports the minimum number of quarter turns (0, 1 or 2) needed to
// face to when currently facing h. Direction of rotation is irrelevant.
func (h Heading) TurnsTo(to Heading) int {
	d := int((to + headingCount - h) % headingCount)
	if d == 3 {
		return 1
	}
	return d
}

// Delta returns the (dRow, dCol) step of one move in heading h.
func (h Heading) Delta() (dRow, dCol int) {
	d := headingDeltas[h%headingCount]
	return d[0], d[1]
}

// Valid reports whether h is one of the four defined headings.
func (h Heading) Valid() bool {
	return h < headingCount
}

// String returns the heading name.
func (h Heading) String() string {
	switch h {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// Toward returns the heading that leads from one cell to an orthogonally
// adjacent cell. ok is false when the cells are not 4-neighbours.
func Toward(from, to Coordinate) (h Heading, ok bool) {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	switch {
	case dr == -1 && dc == 0:
		return Up, true
	case dr == 1 && dc == 0:
		return Down, true
	case dr == 0 && dc == -1:
		return Left, true
	case dr == 0 && dc == 1:
		return Right, true
	default:
		return 0, false
	}
}
