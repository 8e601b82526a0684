// Package protocol converts moves and shot results to and from their wire form.
//
// A move is exactly two ASCII bytes, a column letter A..I followed by a row digit 1..9.
// A result is exactly one byte holding the numeric value of the shot result.
package protocol

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/seabattle/internal/apperror"
	"github.com/rocketscienceinc/seabattle/internal/entity"
)

const (
	MoveSize   = 2
	ResultSize = 1
)

func EncodeMove(move entity.Move) ([]byte, error) {
	if !move.InRange() {
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidMove, move)
	}

	return []byte{byte('A' + move.Col), byte('1' + move.Row)}, nil
}

func DecodeMove(data []byte) (entity.Move, error) {
	if len(data) != MoveSize {
		return entity.Move{}, fmt.Errorf("%w: expected %d bytes, got %d", apperror.ErrInvalidMove, MoveSize, len(data))
	}

	move := entity.Move{
		Col: int(data[0]) - 'A',
		Row: int(data[1]) - '1',
	}
	if !move.InRange() {
		return entity.Move{}, fmt.Errorf("%w: %q", apperror.ErrInvalidMove, data)
	}

	return move, nil
}

// ParseMove reads a move typed by the local player. Only ASCII letters are case-folded.
func ParseMove(input string) (entity.Move, error) {
	data := []byte(strings.TrimSpace(input))
	for i, b := range data {
		if b >= 'a' && b <= 'z' {
			data[i] = b - 'a' + 'A'
		}
	}

	return DecodeMove(data)
}

func EncodeResult(result entity.ShotResult) []byte {
	return []byte{byte(result)}
}

// DecodeResult accepts only 0, 1 and 2. The byte is read as unsigned, so 0x80..0xFF are rejected
// like any other value.
func DecodeResult(data []byte) (entity.ShotResult, error) {
	if len(data) != ResultSize {
		return entity.ShotMiss, fmt.Errorf("%w: expected %d byte, got %d", apperror.ErrInvalidResult, ResultSize, len(data))
	}

	result := entity.ShotResult(data[0])
	if !result.IsValid() {
		return entity.ShotMiss, fmt.Errorf("%w: %d", apperror.ErrInvalidResult, data[0])
	}

	return result, nil
}
