package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/board"
)

// RenderBoard draws the grid with column numbers on top and row numbers on the left.
//
//	   0   1   2
//	0  X |   | O
//	  ---+---+---
//	1    | X |
//	  ---+---+---
//	2    |   | O
func RenderBoard(b *board.Board) string {
	var sb strings.Builder

	size := b.Size()

	header := "  "
	for x := 0; x < size; x++ {
		header += fmt.Sprintf(" %-3d", x)
	}
	sb.WriteString(strings.TrimRight(header, " ") + "\n")

	separator := "  " + strings.TrimSuffix(strings.Repeat("---+", size), "+") + "\n"

	for y, row := range b.Horizontals() {
		fmt.Fprintf(&sb, "%d ", y)
		cells := make([]string, len(row))
		for x, mark := range row {
			cells[x] = " " + mark.String() + " "
		}
		sb.WriteString(strings.TrimRight(strings.Join(cells, "|"), " "))
		sb.WriteString("\n")

		if y < size-1 {
			sb.WriteString(separator)
		}
	}

	return sb.String()
}

// Render prints the board surrounded by blank lines.
func (that *Console) Render(b *board.Board) {
	that.Printf("\n%s\n", RenderBoard(b))
}
