package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-ai/internal/ai"
	"github.com/rocketscienceinc/tictactoe-ai/internal/config"
	"github.com/rocketscienceinc/tictactoe-ai/internal/repository"
	"github.com/rocketscienceinc/tictactoe-ai/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-ai/internal/service"
	"github.com/rocketscienceinc/tictactoe-ai/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

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

	// the inference backend is built once and shared by every request
	generator, err := ai.NewOpenAIClient(logger, conf.AI, nil)
	if err != nil {
		return fmt.Errorf("could not create inference client: %w", err)
	}

	replyRepo, closeReplies, err := newReplyRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeReplies()

	moveService := service.NewMoveService(logger, generator, replyRepo, service.MoveOptions{
		Model:     conf.AI.Model,
		Mark:      conf.AI.Mark,
		MaxTokens: conf.AI.MaxTokens,
	})
	router := rest.NewRouter(rest.NewMoveHandler(logger, moveService))

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "model", conf.AI.Model, "api", conf.AI.API)
	if err = rest.Start(ctx, logger, conf, router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")
	return nil
}

// newReplyRepository - redis-backed reply cache when enabled, a no-op cache otherwise.
func newReplyRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.ReplyRepository, func(), error) {
	if !conf.Redis.Enabled {
		log.Info("Reply cache disabled")
		return repository.NewNopReplyRepository(), func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if conf.Redis.Host == "" || conf.Redis.Port == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeFn := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	log.Info("Reply cache enabled", "addr", redisAddrString, "ttl", conf.Redis.TTL)

	return repository.NewReplyRepository(redisStorage.Connection, conf.Redis.TTL), closeFn, nil
}
