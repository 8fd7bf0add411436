package kernel

import "fmt"

// Coordinate represents a position on the one-dimensional delivery axis.
// Every pickup and drop point of the system lies somewhere on this axis;
// there is no second dimension and no road graph. Any integer is a valid
// coordinate; negative values simply lie on the opposite side of the depot.
//
// Coordinate is an immutable value; arithmetic on it never mutates the
// receiver.
//
// Example:
//
//	warehouse := kernel.Coordinate(-2)
//	customer := kernel.Coordinate(9)
//	fmt.Println(warehouse.DistanceTo(customer)) // Output: 11
type Coordinate int

// Depot is the coordinate every route begins at and returns to.
const Depot Coordinate = 0

// DistanceTo returns the travel distance between two coordinates.
// On the one-dimensional axis the distance is the absolute difference
// of the coordinate values; it is symmetric and never negative.
//
// Example:
//
//	a := kernel.Coordinate(-1)
//	b := kernel.Coordinate(5)
//	fmt.Println(a.DistanceTo(b)) // Output: 6
//	fmt.Println(b.DistanceTo(a)) // Output: 6
func (c Coordinate) DistanceTo(other Coordinate) int {
	d := int(c) - int(other)
	if d < 0 {
		return -d
	}
	return d
}

// String returns a human-readable representation of the coordinate.
// This method implements the fmt.Stringer interface.
func (c Coordinate) String() string {
	return fmt.Sprintf("Coordinate(%d)", int(c))
}
