package tictactoe

import (
	"errors"
	"fmt"
	"strings"

	"logicgames/game"
)

const (
	Empty = '_'
	X     = 'X' // player 0, moves first
	O     = '0' // player 1
)

const Size = 9

var ErrOccupied = errors.New("cell is occupied")

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// linesThrough[i] lists the indexes into lines that contain cell i
var linesThrough [Size][]int

func init() {
	for l, line := range lines {
		for _, cell := range line {
			linesThrough[cell] = append(linesThrough[cell], l)
		}
	}
}

type Board struct {
	game.Anchor
	cells  [Size]byte
	turns  int
	last   int // cell marked by the last turn, -1 on a parsed or empty board
	winner int
}

func New() *Board {
	b := &Board{Anchor: game.NewAnchor(), last: -1, winner: game.NoWinner}
	for i := range b.cells {
		b.cells[i] = Empty
	}
	return b
}

// Parse reads a board from its 9 cells in row-major order. Whitespace is ignored so the output of
// String parses back.
func Parse(s string) (*Board, error) {
	s = strings.Join(strings.Fields(s), "")
	if len(s) != Size {
		return nil, fmt.Errorf("board must have %d cells, got %d", Size, len(s))
	}

	b := New()
	xs, os := 0, 0
	for i := 0; i < Size; i++ {
		switch s[i] {
		case X:
			xs++
		case O:
			os++
		case Empty:
		default:
			return nil, fmt.Errorf("unexpected cell %q at %d", s[i], i)
		}
		b.cells[i] = s[i]
	}
	if xs != os && xs != os+1 {
		return nil, fmt.Errorf("unreachable board with %d X and %d 0 marks", xs, os)
	}
	b.turns = xs + os

	for _, line := range lines {
		owner := b.owner(line)
		if owner == game.NoWinner {
			continue
		}
		if b.winner != game.NoWinner && b.winner != owner {
			return nil, errors.New("unreachable board with a line for both players")
		}
		b.winner = owner
	}
	if b.winner != game.NoWinner && b.winner != game.PrevPlayer(b) {
		return nil, fmt.Errorf("unreachable board: line of player %d, who did not move last", b.winner)
	}
	return b, nil
}

// owner is the player holding all three cells of line, or game.NoWinner
func (b *Board) owner(line [3]int) int {
	c := b.cells[line[0]]
	if c == Empty || c != b.cells[line[1]] || c != b.cells[line[2]] {
		return game.NoWinner
	}
	if c == X {
		return 0
	}
	return 1
}

func (b *Board) Cell(i int) byte {
	return b.cells[i]
}

// Last returns the cell marked by the turn that produced this board
func (b *Board) Last() int {
	return b.last
}

func (b *Board) IsOver() bool {
	return b.winner != game.NoWinner || b.turns == Size
}

func (b *Board) PlayersCount() int {
	return 2
}

func (b *Board) CurrPlayer() int {
	return b.turns % 2
}

func (b *Board) Winner() int {
	return b.winner
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		sb.Write(b.cells[row*3 : row*3+3])
		sb.WriteByte('\n')
	}
	return sb.String()
}

func symbol(player int) byte {
	if player == 0 {
		return X
	}
	return O
}

type Mark struct {
	game.Bound
	Cell int
	from *Board
}

func (m Mark) Move() *Board {
	next := &Board{
		Anchor: game.NewAnchor(),
		cells:  m.from.cells,
		turns:  m.from.turns + 1,
		last:   m.Cell,
		winner: game.NoWinner,
	}
	next.cells[m.Cell] = symbol(m.from.CurrPlayer())
	// only lines through the new mark can have been completed
	for _, l := range linesThrough[m.Cell] {
		if owner := next.owner(lines[l]); owner != game.NoWinner {
			next.winner = owner
			break
		}
	}
	return next
}

// Mark creates the turn marking cell (0..8, row-major) for the current player.
func (b *Board) Mark(cell int) (Mark, error) {
	if cell < 0 || cell >= Size {
		return Mark{}, fmt.Errorf("cell %d out of range: %w", cell, game.ErrIllegalTurn)
	}
	if b.IsOver() {
		return Mark{}, fmt.Errorf("cell %d: game is over: %w", cell, game.ErrIllegalTurn)
	}
	if b.cells[cell] != Empty {
		return Mark{}, fmt.Errorf("cell %d: %w: %w", cell, ErrOccupied, game.ErrIllegalTurn)
	}
	return Mark{Bound: game.Bind(b), Cell: cell, from: b}, nil
}

// Generate lists a mark for every empty cell in row-major order.
func Generate(b *Board) []game.Turn[*Board] {
	if b.IsOver() {
		return nil
	}
	turns := make([]game.Turn[*Board], 0, Size-b.turns)
	for i, c := range b.cells {
		if c == Empty {
			turns = append(turns, Mark{Bound: game.Bind(b), Cell: i, from: b})
		}
	}
	return turns
}
