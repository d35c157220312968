package battleship

// FleetGroup is Count ships of the same number of decks.
type FleetGroup struct {
	Length int
	Count  int
}

type Fleet []FleetGroup

// StandardFleet is four 1-deck, three 2-deck, two 3-deck and one 4-deck
// ship, listed in the order they are placed.
var StandardFleet = Fleet{
	{Length: 4, Count: 1},
	{Length: 3, Count: 2},
	{Length: 2, Count: 3},
	{Length: 1, Count: 4},
}

func (f Fleet) Size() int {
	size := 0
	for _, group := range f {
		size += group.Count
	}
	return size
}

// Lengths expands the fleet into one entry per ship, in placement order.
func (f Fleet) Lengths() []int {
	lengths := make([]int, 0, f.Size())
	for _, group := range f {
		for i := 0; i < group.Count; i++ {
			lengths = append(lengths, group.Length)
		}
	}
	return lengths
}
