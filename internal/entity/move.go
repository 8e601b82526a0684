package entity

import "fmt"

// Move is a single targeted cell, zero-based.
type Move struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func (that Move) InRange() bool {
	return inRange(that.Col, that.Row)
}

// String returns the move in board notation, e.g. "A1".
func (that Move) String() string {
	if !that.InRange() {
		return fmt.Sprintf("(%d,%d)", that.Col, that.Row)
	}

	return string([]byte{byte('A' + that.Col), byte('1' + that.Row)})
}

// ShotResult is the outcome of a move. The numeric values are part of the wire protocol.
type ShotResult uint8

const (
	ShotMiss ShotResult = 0
	ShotHit  ShotResult = 1
	ShotKill ShotResult = 2
)

func (that ShotResult) IsValid() bool {
	return that <= ShotKill
}

func (that ShotResult) String() string {
	switch that {
	case ShotMiss:
		return "miss"
	case ShotHit:
		return "hit"
	case ShotKill:
		return "kill"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(that))
	}
}

type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
)

func inRange(col, row int) bool {
	return col >= 0 && col < FieldSize && row >= 0 && row < FieldSize
}
