package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/seabattle/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_ReadMove(t *testing.T) {
	// Given: input with several moves separated by spaces and newlines
	reader := NewReader(strings.NewReader("A1  b2\n\nI9\n"))

	// When: moves are read until the input ends
	var moves []string
	for {
		move, err := reader.ReadMove(context.Background())
		if err != nil {
			// Then: the end of input is reported as io.EOF
			require.ErrorIs(t, err, io.EOF)
			break
		}
		moves = append(moves, move)
	}

	assert.Equal(t, []string{"A1", "b2", "I9"}, moves)
}

func TestReader_ReadMove_Cancelled(t *testing.T) {
	// Given: an input nobody ever writes to
	in, w := io.Pipe()
	t.Cleanup(func() {
		_ = w.Close()
	})

	reader := NewReader(in)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// When: a move is requested
	done := make(chan error, 1)
	go func() {
		_, err := reader.ReadMove(ctx)
		done <- err
	}()

	// Then: the read returns once the context is done
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(3 * time.Second):
		t.Fatal("ReadMove ignored the context")
	}
}

func TestReader_ReadMove_AfterCancel(t *testing.T) {
	// Given: a read that was abandoned while waiting for input
	in, w := io.Pipe()
	reader := NewReader(in)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := reader.ReadMove(ctx)
	require.ErrorIs(t, err, context.Canceled)

	// When: the player types a move later
	go func() {
		_, _ = w.Write([]byte("C3\n"))
		_ = w.Close()
	}()

	// Then: the typed move is not lost
	move, err := reader.ReadMove(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "C3", move)
}

func TestPresenter_ShowFields(t *testing.T) {
	// Given: an own field with one ship and an opponent model with one miss
	own, err := entity.NewField([]entity.Ship{{Col: 0, Row: 0, Length: 2}})
	require.NoError(t, err)

	opponent := entity.NewOpponentField()
	require.NoError(t, opponent.MarkMiss(8, 8))

	var out bytes.Buffer
	presenter := NewPresenter(&out)

	// When: the fields are shown
	presenter.ShowFields(own, opponent)

	// Then: both fields are printed side by side between two header lines
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, entity.FieldSize+2)

	header := "    A B C D E F G H I      A B C D E F G H I"
	assert.Equal(t, header, lines[0])
	assert.Equal(t, header, lines[len(lines)-1])
	assert.Equal(t, "  1 o o . . . . . . .    1 . . . . . . . . .", lines[1])
	assert.Equal(t, "  9 . . . . . . . . .    9 . . . . . . . . *", lines[9])
}

func TestPresenter_Messages(t *testing.T) {
	var out bytes.Buffer
	presenter := NewPresenter(&out)

	presenter.PromptMove()
	presenter.WrongInput()
	presenter.ShotResult(entity.Move{}, entity.ShotMiss)
	presenter.ShotResult(entity.Move{}, entity.ShotHit)
	presenter.ShotResult(entity.Move{}, entity.ShotKill)
	presenter.WaitingForTurn()
	presenter.RemoteShot(entity.Move{Col: 3, Row: 6}, entity.ShotHit)
	presenter.GameOver(entity.OutcomeWin)
	presenter.GameOver(entity.OutcomeLose)
	presenter.Message("Waiting for connection on %d...", 3333)

	expected := "Your turn: Wrong input, try again\n" +
		"Miss!\nHit!\nKill!\n" +
		"Waiting for turn...\n" +
		"Shoot to D7\n" +
		"Game over! You win!\n" +
		"Game over! You lose.\n" +
		"Waiting for connection on 3333...\n"
	assert.Equal(t, expected, out.String())
}
