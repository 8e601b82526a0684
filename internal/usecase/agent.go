package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/seabattle/internal/apperror"
	"github.com/rocketscienceinc/seabattle/internal/entity"
	"github.com/rocketscienceinc/seabattle/internal/protocol"
)

type state int

const (
	stateLocalTurn state = iota
	stateRemoteTurn
	stateGameOver
)

func (that state) String() string {
	switch that {
	case stateLocalTurn:
		return "local_turn"
	case stateRemoteTurn:
		return "remote_turn"
	case stateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// port is the byte stream to the opponent.
type port interface {
	SendExact(data []byte) error
	ReceiveExact(n int) ([]byte, error)
}

// moveReader supplies moves typed by the local player.
type moveReader interface {
	ReadMove(ctx context.Context) (string, error)
}

type presenter interface {
	ShowFields(own, opponent entity.View)
	PromptMove()
	WrongInput()
	ShotResult(move entity.Move, result entity.ShotResult)
	WaitingForTurn()
	RemoteShot(move entity.Move, result entity.ShotResult)
	GameOver(outcome entity.Outcome)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.GameRecord) error
}

// Agent plays one game against a remote peer. A player keeps the initiative while hitting and
// gives it away on a miss.
type Agent struct {
	logger *slog.Logger

	own      *entity.Field
	opponent *entity.OpponentField

	port      port
	input     moveReader
	presenter presenter
	gameRepo  gameRepo

	state  state
	record *entity.GameRecord
	now    func() time.Time
}

// NewAgent creates an agent for the given own field. gameRepo may be nil when records are not kept.
func NewAgent(logger *slog.Logger, own *entity.Field, port port, input moveReader, presenter presenter, gameRepo gameRepo) *Agent {
	return &Agent{
		logger: logger.With("component", "agent"),

		own:      own,
		opponent: entity.NewOpponentField(),

		port:      port,
		input:     input,
		presenter: presenter,
		gameRepo:  gameRepo,

		now: time.Now,
	}
}

// StartGame runs the turn loop until one fleet is destroyed. The client role moves first.
// Any returned error ends the session.
func (that *Agent) StartGame(ctx context.Context, role entity.Role) (entity.Outcome, error) {
	log := that.logger.With("method", "StartGame", "role", role)

	that.record = entity.NewGameRecord(role, that.now())
	that.saveRecord(ctx)

	that.state = stateRemoteTurn
	if role.Initiative() {
		that.state = stateLocalTurn
	}
	that.checkGameOver()

	log.Info("game started", "game_id", that.record.ID, "state", that.state.String())

	for that.state != stateGameOver {
		if err := ctx.Err(); err != nil {
			log.Info("game interrupted", "game_id", that.record.ID)
			return "", fmt.Errorf("game interrupted: %w", err)
		}

		that.presenter.ShowFields(that.own, that.opponent)

		if err := that.step(ctx); err != nil {
			log.Error("game aborted", "game_id", that.record.ID, "error", err)
			return "", err
		}

		that.checkGameOver()
	}

	outcome := that.outcome()
	that.record.Finish(outcome, that.now())
	that.saveRecord(ctx)

	that.presenter.ShowFields(that.own, that.opponent)
	that.presenter.GameOver(outcome)

	log.Info("game over",
		"game_id", that.record.ID,
		"outcome", outcome,
		"shots_fired", that.record.ShotsFired,
		"accuracy", that.record.Accuracy(),
	)

	return outcome, nil
}

// Initiative reports whether the local player acts next.
func (that *Agent) Initiative() bool {
	return that.state == stateLocalTurn
}

func (that *Agent) Own() *entity.Field {
	return that.own
}

func (that *Agent) Opponent() *entity.OpponentField {
	return that.opponent
}

// step performs one iteration of the current state.
func (that *Agent) step(ctx context.Context) error {
	switch that.state {
	case stateLocalTurn:
		return that.localTurn(ctx)
	case stateRemoteTurn:
		return that.remoteTurn()
	default:
		return nil
	}
}

func (that *Agent) localTurn(ctx context.Context) error {
	log := that.logger.With("method", "localTurn")

	that.presenter.PromptMove()

	input, err := that.input.ReadMove(ctx)
	if err != nil {
		return fmt.Errorf("failed to read move: %w", err)
	}

	move, err := protocol.ParseMove(input)
	if err != nil || that.opponent.IsResolved(move.Col, move.Row) {
		log.Debug("wrong input", "input", input, "error", err)
		that.presenter.WrongInput()
		return nil
	}

	data, err := protocol.EncodeMove(move)
	if err != nil {
		return fmt.Errorf("failed to encode move: %w", err)
	}

	if err = that.port.SendExact(data); err != nil {
		return fmt.Errorf("failed to send move: %w", err)
	}

	data, err = that.port.ReceiveExact(protocol.ResultSize)
	if err != nil {
		return fmt.Errorf("failed to read result: %w", err)
	}

	result, err := protocol.DecodeResult(data)
	if err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrProtocolViolation, err)
	}

	that.presenter.ShotResult(move, result)
	that.record.RecordShot(result)

	switch result {
	case entity.ShotMiss:
		err = that.opponent.MarkMiss(move.Col, move.Row)
		that.state = stateRemoteTurn
	case entity.ShotHit:
		err = that.opponent.MarkHit(move.Col, move.Row)
	case entity.ShotKill:
		err = that.opponent.MarkKill(move.Col, move.Row)
	}
	if err != nil {
		return fmt.Errorf("failed to mark %s at %s: %w", result, move, err)
	}

	log.Debug("shot", "move", move.String(), "result", result.String())

	return nil
}

func (that *Agent) remoteTurn() error {
	log := that.logger.With("method", "remoteTurn")

	that.presenter.WaitingForTurn()

	data, err := that.port.ReceiveExact(protocol.MoveSize)
	if err != nil {
		return fmt.Errorf("failed to read move: %w", err)
	}

	move, err := protocol.DecodeMove(data)
	if err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrProtocolViolation, err)
	}

	result, err := that.own.Shoot(move.Col, move.Row)
	if err != nil {
		if errors.Is(err, apperror.ErrAlreadyShot) || errors.Is(err, apperror.ErrOutOfRange) {
			return fmt.Errorf("%w: %w", apperror.ErrProtocolViolation, err)
		}

		return fmt.Errorf("failed to apply shot: %w", err)
	}

	that.presenter.RemoteShot(move, result)
	that.record.RecordIncoming()

	if err = that.port.SendExact(protocol.EncodeResult(result)); err != nil {
		return fmt.Errorf("failed to send result: %w", err)
	}

	if result == entity.ShotMiss {
		that.state = stateLocalTurn
	}

	log.Debug("shot received", "move", move.String(), "result", result.String())

	return nil
}

func (that *Agent) checkGameOver() {
	if that.own.IsLoser() || that.opponent.IsLoser() {
		that.state = stateGameOver
	}
}

func (that *Agent) outcome() entity.Outcome {
	if that.own.IsLoser() {
		return entity.OutcomeLose
	}

	return entity.OutcomeWin
}

// saveRecord stores the game summary. Storage problems never interrupt the game.
func (that *Agent) saveRecord(ctx context.Context) {
	if that.gameRepo == nil {
		return
	}

	log := that.logger.With("method", "saveRecord")

	if err := that.gameRepo.CreateOrUpdate(ctx, that.record); err != nil {
		log.Error("failed to save game record", "game_id", that.record.ID, "error", err)
	}
}
