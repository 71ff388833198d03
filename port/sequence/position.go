package sequence

import "cmp"

// Position is the constraint for location values within a Collection.
//
// A Position is a regular value: its zero value is a valid default,
// it copies freely, and it supports equality plus a total order through Compare.
// A Position carries no traversal behaviour on its own;
// advancing, retreating and offsetting belong to the Collection that issued it,
// since only the owning Collection can validate and interpret raw position values.
// A Position obtained from one Collection is meaningless for any other Collection.
type Position[P any] interface {
	comparable
	// Compare returns a negative number when the receiver is located before oth,
	// zero when they denote the same location, and a positive number when after.
	Compare(oth P) int
}

// Index is the Position type of counted collections,
// where a location is simply the number of steps taken from the begin position.
type Index int

func (i Index) Compare(oth Index) int { return cmp.Compare(i, oth) }
