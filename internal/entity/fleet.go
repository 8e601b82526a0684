package entity

import (
	"errors"
	"fmt"
	"math/rand"
)

const (
	maxPlacementAttempts = 1000
	maxLayoutAttempts    = 100
)

var ErrFleetDoesNotFit = errors.New("could not place the fleet on the field")

// NewRandomField places Fleet at random, largest ship first. Ships never touch, not even
// diagonally. The same rng state always yields the same field.
func NewRandomField(rng *rand.Rand) (*Field, error) {
	for range maxLayoutAttempts {
		ships, ok := randomLayout(rng)
		if !ok {
			continue
		}

		field, err := NewField(ships)
		if err != nil {
			return nil, fmt.Errorf("random layout rejected: %w", err)
		}

		return field, nil
	}

	return nil, ErrFleetDoesNotFit
}

func randomLayout(rng *rand.Rand) ([]Ship, bool) {
	var taken [FieldSize][FieldSize]bool
	ships := make([]Ship, 0, len(Fleet))

	for _, length := range Fleet {
		placed := false
		for range maxPlacementAttempts {
			ship := Ship{
				Length:   length,
				Vertical: rng.Intn(2) == 0,
			}
			if ship.Vertical {
				ship.Col = rng.Intn(FieldSize)
				ship.Row = rng.Intn(FieldSize - length + 1)
			} else {
				ship.Col = rng.Intn(FieldSize - length + 1)
				ship.Row = rng.Intn(FieldSize)
			}

			if !fits(&taken, ship) {
				continue
			}

			for _, cell := range ship.Cells() {
				taken[cell.Row][cell.Col] = true
			}

			ships = append(ships, ship)
			placed = true

			break
		}

		if !placed {
			return nil, false
		}
	}

	return ships, true
}

// fits reports whether the ship and its surrounding cells are free.
func fits(taken *[FieldSize][FieldSize]bool, ship Ship) bool {
	for _, cell := range ship.Cells() {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				c, r := cell.Col+dc, cell.Row+dr
				if inRange(c, r) && taken[r][c] {
					return false
				}
			}
		}
	}

	return true
}
