package entity

import (
	"fmt"

	"github.com/rocketscienceinc/seabattle/internal/apperror"
)

// Fleet is the ship lengths every player places. Both peers rely on it to know when the game ends.
var Fleet = []int{4, 3, 3, 2, 2, 2, 1, 1, 1, 1}

// FleetCells is the total number of ship cells in Fleet.
var FleetCells = fleetCells(Fleet)

const noShip = -1

// Ship is a straight run of cells starting at (Col, Row) and going right or down.
type Ship struct {
	Col      int  `json:"col"`
	Row      int  `json:"row"`
	Length   int  `json:"length"`
	Vertical bool `json:"vertical"`
}

func (that Ship) Cells() []Move {
	cells := make([]Move, 0, that.Length)
	for i := 0; i < that.Length; i++ {
		if that.Vertical {
			cells = append(cells, Move{Col: that.Col, Row: that.Row + i})
		} else {
			cells = append(cells, Move{Col: that.Col + i, Row: that.Row})
		}
	}

	return cells
}

// Field is the authoritative state of the local player's fleet.
type Field struct {
	cells grid
	ships []Ship
	// owner maps each cell to its index in ships, or noShip.
	owner [FieldSize][FieldSize]int
	// alive counts ship cells not yet hit.
	alive int
}

func NewField(ships []Ship) (*Field, error) {
	field := &Field{
		ships: make([]Ship, 0, len(ships)),
	}

	for row := range field.owner {
		for col := range field.owner[row] {
			field.owner[row][col] = noShip
		}
	}

	for _, ship := range ships {
		if ship.Length < 1 {
			return nil, fmt.Errorf("%w: ship length %d", apperror.ErrInvalidPlacement, ship.Length)
		}

		for _, cell := range ship.Cells() {
			if !cell.InRange() {
				return nil, fmt.Errorf("%w: ship at %s leaves the field", apperror.ErrInvalidPlacement, Move{Col: ship.Col, Row: ship.Row})
			}

			if field.owner[cell.Row][cell.Col] != noShip {
				return nil, fmt.Errorf("%w: ships overlap at %s", apperror.ErrInvalidPlacement, cell)
			}

			field.owner[cell.Row][cell.Col] = len(field.ships)
			field.cells[cell.Row][cell.Col] = CellShip
			field.alive++
		}

		field.ships = append(field.ships, ship)
	}

	return field, nil
}

// Shoot applies an opponent's move to the field.
func (that *Field) Shoot(col, row int) (ShotResult, error) {
	if !inRange(col, row) {
		return ShotMiss, fmt.Errorf("%w: col %d, row %d", apperror.ErrOutOfRange, col, row)
	}

	switch that.cells[row][col] {
	case CellEmpty:
		that.cells[row][col] = CellMiss
		return ShotMiss, nil
	case CellShip:
	default:
		return ShotMiss, fmt.Errorf("%w: %s", apperror.ErrAlreadyShot, Move{Col: col, Row: row})
	}

	that.cells[row][col] = CellHit
	that.alive--

	ship := that.ships[that.owner[row][col]]
	cells := ship.Cells()
	for _, cell := range cells {
		if that.cells[cell.Row][cell.Col] != CellHit {
			return ShotHit, nil
		}
	}

	for _, cell := range cells {
		that.cells[cell.Row][cell.Col] = CellKilled
	}

	return ShotKill, nil
}

// Ships returns a copy of the placement the field was created from.
func (that *Field) Ships() []Ship {
	return append([]Ship(nil), that.ships...)
}

// Alive returns the number of ship cells not yet hit.
func (that *Field) Alive() int {
	return that.alive
}

func (that *Field) IsLoser() bool {
	return that.alive == 0
}

func (that *Field) Size() int {
	return FieldSize
}

func (that *Field) CellAt(col, row int) Cell {
	return that.cells.at(col, row)
}

func (that *Field) Line(row int) string {
	return that.cells.line(row)
}

func fleetCells(fleet []int) int {
	total := 0
	for _, length := range fleet {
		total += length
	}

	return total
}
