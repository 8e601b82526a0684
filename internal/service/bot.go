package service

import (
	"context"
	"errors"
	"math/rand"

	"github.com/rocketscienceinc/seabattle/internal/entity"
)

var (
	ErrNoFieldToWatch   = errors.New("bot has no opponent field to watch")
	ErrNoAvailableMoves = errors.New("no available moves")
)

// BotService plays the local side: it picks a random cell the opponent field does not know yet.
type BotService interface {
	Watch(field entity.View)
	ReadMove(ctx context.Context) (string, error)
}

type botService struct {
	rng   *rand.Rand
	field entity.View
}

func NewBotService(rng *rand.Rand) BotService {
	return &botService{rng: rng}
}

// Watch sets the opponent field the bot aims at.
func (that *botService) Watch(field entity.View) {
	that.field = field
}

func (that *botService) ReadMove(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if that.field == nil {
		return "", ErrNoFieldToWatch
	}

	size := that.field.Size()
	availableCells := make([]entity.Move, 0, size*size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if that.field.CellAt(col, row) == entity.CellUnknown {
				availableCells = append(availableCells, entity.Move{Col: col, Row: row})
			}
		}
	}

	if len(availableCells) == 0 {
		return "", ErrNoAvailableMoves
	}

	return availableCells[that.rng.Intn(len(availableCells))].String(), nil
}
