package player

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"connectn/game"
	"connectn/searcher"
)

// Human plays moves typed on the console. Columns are shown and entered
// 1-based; the returned column is 0-based like the rest of the system.
type Human struct {
	id  int
	in  *bufio.Reader
	out io.Writer
}

func NewHuman(id int) *Human {
	return &Human{id: id, in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

func (h *Human) mark() string {
	if h.id == 1 {
		return "X"
	}
	return "O"
}

// FindMove renders the board and prompts until a playable column is entered.
func (h *Human) FindMove(b *game.Board) int {
	fmt.Fprintln(h.out, b)

	for {
		fmt.Fprintf(h.out, "Player %s, which column would you like to play in?\n", h.mark())
		line, err := h.in.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(h.out, "No more input, giving up.")
			return searcher.NoMove
		}

		column, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(h.out, "Please enter a number that corresponds to a column.")
			continue
		}
		if column < 1 || column > b.Width() || !b.IsValid(column-1) {
			fmt.Fprintln(h.out, "Please enter a valid column. That column is either full or doesn't exist.")
			continue
		}
		fmt.Fprintf(h.out, "Selected column: %d\n", column)
		return column - 1
	}
}
