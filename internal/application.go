package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/seabattle/internal/config"
	"github.com/rocketscienceinc/seabattle/internal/entity"
	"github.com/rocketscienceinc/seabattle/internal/repository"
	"github.com/rocketscienceinc/seabattle/internal/repository/storage"
	"github.com/rocketscienceinc/seabattle/internal/service"
	"github.com/rocketscienceinc/seabattle/internal/usecase"
	"github.com/rocketscienceinc/seabattle/transport/console"
	"github.com/rocketscienceinc/seabattle/transport/tcp"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

type moveReader interface {
	ReadMove(ctx context.Context) (string, error)
}

// RunApp - plays one game against the opponent described by args.
func RunApp(logger *slog.Logger, conf *config.Config, args *config.Args, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	field, err := entity.NewRandomField(rand.New(rand.NewSource(args.Seed))) //nolint: gosec // the seed is chosen by the player
	if err != nil {
		return fmt.Errorf("could not generate field: %w", err)
	}

	var gameRepo repository.GameRepository
	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		gameRepo = repository.NewGameRepository(redisStorage.Connection, conf.Redis.TTL)
	}

	presenter := console.NewPresenter(out)

	conn, err := connect(ctx, logger, args, presenter)
	if err != nil {
		return err
	}

	defer func() {
		if err = conn.Close(); err != nil {
			log.Debug("could not close connection", "error", err)
		}
	}()

	// unblocks a pending read when the process is asked to stop
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	var input moveReader = console.NewReader(in)

	var bot service.BotService
	if conf.Bot {
		bot = service.NewBotService(rand.New(rand.NewSource(args.Seed + 1))) //nolint: gosec // it's ok
		input = bot
	}

	agent := usecase.NewAgent(logger, field, conn, input, presenter, gameRepo)
	if bot != nil {
		bot.Watch(agent.Opponent())
	}

	outcome, err := agent.StartGame(ctx, args.Role)
	if err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	log.Info("Game finished", "outcome", outcome)

	return nil
}

func connect(ctx context.Context, logger *slog.Logger, args *config.Args, presenter *console.Presenter) (*tcp.Conn, error) {
	if args.Role == entity.RoleClient {
		conn, err := tcp.Dial(ctx, logger, args.IP, args.Port)
		if err != nil {
			presenter.Message("Can't connect to server")
			return nil, fmt.Errorf("could not connect: %w", err)
		}

		return conn, nil
	}

	listener, err := tcp.Listen(ctx, logger, args.Port)
	if err != nil {
		return nil, fmt.Errorf("could not listen: %w", err)
	}

	go func() {
		<-ctx.Done()
		_ = listener.Close()
	}()

	presenter.Message("Waiting for connection...")

	conn, err := listener.Accept()
	if err != nil {
		presenter.Message("Can't accept connection")
		return nil, fmt.Errorf("could not accept: %w", err)
	}

	return conn, nil
}
