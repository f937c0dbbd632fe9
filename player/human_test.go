package player

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"connectn/game"
	"connectn/searcher"
)

func testHuman(input string) *Human {
	return &Human{
		id:  1,
		in:  bufio.NewReader(strings.NewReader(input)),
		out: io.Discard,
	}
}

func TestFindMoveRetriesUntilValidInput(t *testing.T) {
	// Non-numeric, below range, above range, full column, then a valid one.
	b := game.NewBoard(7, 6)
	for row := 0; row < 6; row++ {
		b = b.GetNewBoard(0, 1+row%2)
	}
	h := testHuman("abc\n0\n9\n1\n3\n")

	require.Equal(t, 2, h.FindMove(b), "input is 1-based, result 0-based")
}

func TestFindMoveGivesUpOnClosedInput(t *testing.T) {
	h := testHuman("")
	require.Equal(t, searcher.NoMove, h.FindMove(game.NewBoard(7, 6)))
}

func TestFindMoveAcceptsInputWithoutTrailingNewline(t *testing.T) {
	h := testHuman("4")
	require.Equal(t, 3, h.FindMove(game.NewBoard(7, 6)))
}
