package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/seabattle/internal/entity"
)

const (
	leftPad   = "  "
	delimiter = "    "
)

// Presenter prints the game to a terminal.
type Presenter struct {
	out io.Writer
}

func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

// ShowFields prints the own field on the left and the opponent model on the right.
func (that *Presenter) ShowFields(own, opponent entity.View) {
	var sb strings.Builder

	header := entity.HeaderLine()
	headerPair := leftPad + header + delimiter + header + "\n"

	sb.WriteString(headerPair)
	for row := 0; row < own.Size(); row++ {
		sb.WriteString(leftPad)
		sb.WriteString(own.Line(row))
		sb.WriteString(delimiter)
		sb.WriteString(opponent.Line(row))
		sb.WriteByte('\n')
	}
	sb.WriteString(headerPair)

	that.print(sb.String())
}

func (that *Presenter) PromptMove() {
	that.print("Your turn: ")
}

func (that *Presenter) WrongInput() {
	that.print("Wrong input, try again\n")
}

func (that *Presenter) ShotResult(_ entity.Move, result entity.ShotResult) {
	switch result {
	case entity.ShotMiss:
		that.print("Miss!\n")
	case entity.ShotHit:
		that.print("Hit!\n")
	case entity.ShotKill:
		that.print("Kill!\n")
	}
}

func (that *Presenter) WaitingForTurn() {
	that.print("Waiting for turn...\n")
}

func (that *Presenter) RemoteShot(move entity.Move, _ entity.ShotResult) {
	that.print("Shoot to " + move.String() + "\n")
}

func (that *Presenter) GameOver(outcome entity.Outcome) {
	if outcome == entity.OutcomeLose {
		that.print("Game over! You lose.\n")
		return
	}

	that.print("Game over! You win!\n")
}

// Message prints a free-form line such as connection status.
func (that *Presenter) Message(format string, args ...any) {
	that.print(fmt.Sprintf(format, args...) + "\n")
}

func (that *Presenter) print(text string) {
	// the terminal is the only consumer; a failed write has nowhere better to go
	_, _ = io.WriteString(that.out, text)
}
