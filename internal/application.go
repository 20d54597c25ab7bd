package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/rest"
)

var ErrUnknownStorage = errors.New("unknown storage type")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	gameRepo, closeStorage, err := newGameRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	gameService := service.NewGameService(gameRepo)
	botService := service.NewBotService(logger)
	gameManager := usecase.NewGameManager(logger, gameService, botService)

	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort, "storage", conf.Storage)
		httpErrCh <- rest.Start(ctx, log, conf.HTTPPort, rest.NewRouter(logger, gameManager))
	}()

	select {
	case err = <-httpErrCh:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return <-httpErrCh
	}
}

func newGameRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.GameRepository, func(), error) {
	switch conf.Storage {
	case config.StorageMemory:
		return repository.NewMemoryGameRepository(), func() {}, nil
	case config.StorageRedis:
		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		closeStorage := func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}

		return repository.NewGameRepository(redisStorage, conf.SessionTTL), closeStorage, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStorage, conf.Storage)
	}
}
