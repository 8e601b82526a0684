package entity

import "strings"

const FieldSize = 9

type Cell uint8

const (
	CellEmpty Cell = iota
	CellShip
	CellMiss
	CellHit
	CellKilled
	CellUnknown
)

// Glyph returns the rendering of a cell. Unknown and empty cells look the same.
func (that Cell) Glyph() byte {
	switch that {
	case CellShip:
		return 'o'
	case CellMiss:
		return '*'
	case CellHit:
		return 'x'
	case CellKilled:
		return 'X'
	default:
		return '.'
	}
}

// View is the read-only capability shared by the own field and the opponent model.
type View interface {
	Size() int
	CellAt(col, row int) Cell
	IsLoser() bool
	Line(row int) string
}

type grid [FieldSize][FieldSize]Cell

func (that *grid) at(col, row int) Cell {
	if !inRange(col, row) {
		return CellUnknown
	}

	return that[row][col]
}

// line renders a row as "<row label> <glyph> <glyph> ...".
func (that *grid) line(row int) string {
	var sb strings.Builder
	sb.Grow(FieldSize*2 + 1)

	sb.WriteByte(byte('1' + row))
	for col := 0; col < FieldSize; col++ {
		sb.WriteByte(' ')
		sb.WriteByte(that.at(col, row).Glyph())
	}

	return sb.String()
}

// HeaderLine returns the column labels aligned with Line.
func HeaderLine() string {
	var sb strings.Builder
	sb.Grow(FieldSize*2 + 1)

	sb.WriteByte(' ')
	for col := 0; col < FieldSize; col++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte('A' + col))
	}

	return sb.String()
}
