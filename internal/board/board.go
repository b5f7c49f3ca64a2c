package board

const (
	// Size is the number of cells on the board.
	Size = 9

	// Center and the corner/edge groups, stored row-major.
	Center = 4

	EmptyCell = ""
)

// Corners and Edges list the non-center cells in ascending index order.
var (
	Corners = []int{0, 2, 6, 8}
	Edges   = []int{1, 3, 5, 7}
)

// Board is a fixed 3x3 grid stored row-major. The zero value is an empty
// board. Board has value semantics, so a plain assignment gives search code a
// private copy.
type Board [Size]string

// SetCell writes mark into cell. It reports whether the write happened:
// out-of-range indices and occupied cells leave the board untouched.
func (that *Board) SetCell(cell int, mark string) bool {
	if cell < 0 || cell >= Size {
		return false
	}

	if that[cell] != EmptyCell {
		return false
	}

	that[cell] = mark

	return true
}

// Cell returns the mark stored in cell. The second return value is false for
// an out-of-range index.
func (that Board) Cell(cell int) (string, bool) {
	if cell < 0 || cell >= Size {
		return EmptyCell, false
	}

	return that[cell], true
}

// Reset clears all cells.
func (that *Board) Reset() {
	*that = Board{}
}

// IsFull reports whether no empty cell remains.
func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// EmptyCells returns the indices of all empty cells in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, Size)

	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}
