package motion

// Direction is one of the four compass directions. The zero value is North.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists all four directions in clockwise order.
var Directions = [4]Direction{North, East, South, West}

// unit displacement per direction; Y grows to the south.
var deltas = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Inverse returns the opposite direction.
func (d Direction) Inverse() Direction {
	return (d + 2) & 3
}

// Delta returns the unit displacement (dx, dy) of one step in d.
func (d Direction) Delta() (dx, dy int) {
	v := deltas[d&3]
	return v[0], v[1]
}

// Valid reports whether d is one of the four defined directions.
func (d Direction) Valid() bool {
	return d <= West
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return "Direction(?)"
}
