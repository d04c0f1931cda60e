package board

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

// DefaultSize is the side of a classic tic-tac-toe grid.
const DefaultSize = 3

const (
	X    Mark = "X"
	O    Mark = "O"
	None Mark = ""
)

var (
	ErrBoardSize  = errors.New("board size must be at least 1")
	ErrBoardShape = errors.New("board must be square")
)

// Mark identifies the player who claimed a cell. None means the cell is empty.
type Mark string

func (that Mark) String() string {
	if that == None {
		return " "
	}
	return string(that)
}

// Line is an ordered sequence of cells along one direction of the grid.
type Line []Mark

// Axis is an ordered set of lines fed to AxisToWinner.
type Axis []Line

// Board holds a square grid of marks. Cells are addressed by (x, y), column then row.
type Board struct {
	size  int
	moves [][]Mark
}

// New returns an empty 3x3 board.
func New() *Board {
	b, _ := NewWithSize(DefaultSize)
	return b
}

// NewWithSize returns an empty size x size board.
func NewWithSize(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBoardSize, size)
	}

	moves := make([][]Mark, size)
	for i := range moves {
		moves[i] = make([]Mark, size)
	}

	return &Board{size: size, moves: moves}, nil
}

// FromRows builds a board from a square grid given row by row.
func FromRows(rows ...Line) (*Board, error) {
	b, err := NewWithSize(len(rows))
	if err != nil {
		return nil, err
	}

	for y, row := range rows {
		if len(row) != b.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBoardShape, y, len(row), b.size)
		}
		copy(b.moves[y], row)
	}

	return b, nil
}

func (that *Board) Size() int {
	return that.size
}

// Moves returns a copy of the grid, rows then columns.
func (that *Board) Moves() [][]Mark {
	moves := make([][]Mark, that.size)
	for y, row := range that.moves {
		moves[y] = append([]Mark(nil), row...)
	}
	return moves
}

// PlaceMark puts mark on the cell at column x, row y.
// The cell must be empty; occupied cells are never overwritten.
func (that *Board) PlaceMark(mark Mark, x, y int) error {
	if mark == None {
		return apperror.ErrInvalidMark
	}

	if !that.inBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) on a %dx%d board", apperror.ErrOutOfBounds, x, y, that.size, that.size)
	}

	if that.moves[y][x] != None {
		return fmt.Errorf("%w: (%d,%d) holds %s", apperror.ErrCellOccupied, x, y, that.moves[y][x])
	}

	that.moves[y][x] = mark

	return nil
}

// OpenSpot reports whether (x, y) is on the board and empty.
func (that *Board) OpenSpot(x, y int) bool {
	return that.inBounds(x, y) && that.moves[y][x] == None
}

// OpenSpots lists every open (x, y) pair in row-major order.
func (that *Board) OpenSpots() [][2]int {
	spots := make([][2]int, 0, that.size*that.size)
	for y, row := range that.moves {
		for x, cell := range row {
			if cell == None {
				spots = append(spots, [2]int{x, y})
			}
		}
	}
	return spots
}

func (that *Board) GameOver() bool {
	return that.Draw() || that.Winner() != None
}

// Draw is true when every cell is filled and no line is won.
// A full board with a winning line is not a draw.
func (that *Board) Draw() bool {
	return that.Winner() == None && that.full()
}

// Winner checks rows, then columns, then diagonals and returns the first winning mark.
func (that *Board) Winner() Mark {
	for _, winner := range []func() Mark{
		that.HorizontalWinner,
		that.VerticalWinner,
		that.DiagonalWinner,
	} {
		if mark := winner(); mark != None {
			return mark
		}
	}
	return None
}

func (that *Board) HorizontalWinner() Mark {
	return AxisToWinner(that.Horizontals())
}

func (that *Board) VerticalWinner() Mark {
	return AxisToWinner(that.Verticals())
}

func (that *Board) DiagonalWinner() Mark {
	return AxisToWinner(that.Diagonals())
}

// Horizontals returns the rows of the grid in order.
func (that *Board) Horizontals() Axis {
	axis := make(Axis, that.size)
	for y, row := range that.moves {
		axis[y] = append(Line(nil), row...)
	}
	return axis
}

// Verticals returns the columns of the grid, left to right.
func (that *Board) Verticals() Axis {
	axis := make(Axis, that.size)
	for x := range axis {
		line := make(Line, that.size)
		for y := range line {
			line[y] = that.moves[y][x]
		}
		axis[x] = line
	}
	return axis
}

// Diagonals returns the main diagonal followed by the anti-diagonal.
func (that *Board) Diagonals() Axis {
	diag := make(Line, that.size)
	anti := make(Line, that.size)
	for i := 0; i < that.size; i++ {
		diag[i] = that.moves[i][i]
		anti[i] = that.moves[i][that.size-1-i]
	}
	return Axis{diag, anti}
}

// AxisToWinner returns the value of the first fully occupied line whose
// cells are all the same mark, or None. Lines are scanned in order.
func AxisToWinner(axis Axis) Mark {
	for _, line := range axis {
		if len(line) == 0 || !line.full() {
			continue
		}
		if line.uniform() {
			return line[0]
		}
	}
	return None
}

func (that Line) full() bool {
	for _, cell := range that {
		if cell == None {
			return false
		}
	}
	return true
}

func (that Line) uniform() bool {
	for _, cell := range that[1:] {
		if cell != that[0] {
			return false
		}
	}
	return true
}

func (that *Board) full() bool {
	for _, row := range that.moves {
		if !Line(row).full() {
			return false
		}
	}
	return true
}

func (that *Board) inBounds(x, y int) bool {
	return x >= 0 && x < that.size && y >= 0 && y < that.size
}
