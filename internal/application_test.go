package application

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ai/internal/config"
	"github.com/rocketscienceinc/tictactoe-ai/internal/repository"
)

func TestNewReplyRepository(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))

	t.Run("Disabled redis gives a no-op cache", func(t *testing.T) {
		// Given: redis turned off
		conf := &config.Config{Redis: config.Redis{Enabled: false}}

		// When: building the reply repository
		replies, closeFn, err := newReplyRepository(context.Background(), log, conf)

		// Then: nothing is cached
		require.NoError(t, err)
		t.Cleanup(closeFn)

		require.NoError(t, replies.Save(context.Background(), "m", "p", "4"))
		_, err = replies.Get(context.Background(), "m", "p")
		assert.ErrorIs(t, err, repository.ErrReplyNotFound)
	})

	t.Run("Enabled redis without an address", func(t *testing.T) {
		// Given: redis turned on with no host
		conf := &config.Config{Redis: config.Redis{Enabled: true, Port: "6379"}}

		// When: building the reply repository
		_, _, err := newReplyRepository(context.Background(), log, conf)

		// Then: ErrAddrNotFound is returned
		assert.ErrorIs(t, err, ErrAddrNotFound)
	})
}
