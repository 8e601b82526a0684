package entity

import (
	"fmt"

	"github.com/rocketscienceinc/seabattle/internal/apperror"
)

// OpponentField is what the local player knows about the opponent's fleet. It holds no ship
// data and trusts the results declared by the remote side.
type OpponentField struct {
	cells grid
	alive int
}

func NewOpponentField() *OpponentField {
	field := &OpponentField{
		alive: FleetCells,
	}

	for row := range field.cells {
		for col := range field.cells[row] {
			field.cells[row][col] = CellUnknown
		}
	}

	return field
}

func (that *OpponentField) MarkMiss(col, row int) error {
	if !inRange(col, row) {
		return fmt.Errorf("%w: col %d, row %d", apperror.ErrOutOfRange, col, row)
	}

	if that.cells[row][col] == CellUnknown {
		that.cells[row][col] = CellMiss
	}

	return nil
}

func (that *OpponentField) MarkHit(col, row int) error {
	if !inRange(col, row) {
		return fmt.Errorf("%w: col %d, row %d", apperror.ErrOutOfRange, col, row)
	}

	that.hit(col, row)

	return nil
}

// MarkKill records the last hit on a ship. The hit run through the cell becomes killed and its
// unknown neighbours become misses, since ships never touch.
func (that *OpponentField) MarkKill(col, row int) error {
	if !inRange(col, row) {
		return fmt.Errorf("%w: col %d, row %d", apperror.ErrOutOfRange, col, row)
	}

	that.hit(col, row)

	ship := that.hitRun(col, row)
	for _, cell := range ship {
		that.cells[cell.Row][cell.Col] = CellKilled
	}

	for _, cell := range ship {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				c, r := cell.Col+dc, cell.Row+dr
				if inRange(c, r) && that.cells[r][c] == CellUnknown {
					that.cells[r][c] = CellMiss
				}
			}
		}
	}

	return nil
}

// IsResolved reports whether a shot at the cell would tell nothing new.
func (that *OpponentField) IsResolved(col, row int) bool {
	return inRange(col, row) && that.cells[row][col] != CellUnknown
}

// Alive returns the number of opponent ship cells not yet hit.
func (that *OpponentField) Alive() int {
	return that.alive
}

func (that *OpponentField) IsLoser() bool {
	return that.alive <= 0
}

func (that *OpponentField) Size() int {
	return FieldSize
}

func (that *OpponentField) CellAt(col, row int) Cell {
	return that.cells.at(col, row)
}

func (that *OpponentField) Line(row int) string {
	return that.cells.line(row)
}

func (that *OpponentField) hit(col, row int) {
	switch that.cells[row][col] {
	case CellHit, CellKilled:
		return
	}

	that.cells[row][col] = CellHit
	that.alive--
}

// hitRun collects the straight run of hit cells containing (col, row).
func (that *OpponentField) hitRun(col, row int) []Move {
	run := []Move{{Col: col, Row: row}}

	for _, dir := range [...]Move{{Col: 1}, {Col: -1}, {Row: 1}, {Row: -1}} {
		c, r := col+dir.Col, row+dir.Row
		for inRange(c, r) && (that.cells[r][c] == CellHit || that.cells[r][c] == CellKilled) {
			run = append(run, Move{Col: c, Row: r})
			c, r = c+dir.Col, r+dir.Row
		}
	}

	return run
}
