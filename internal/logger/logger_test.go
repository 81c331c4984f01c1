package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext(t *testing.T) {
	t.Run("falls back to global", func(t *testing.T) {
		require.Equal(t, zap.S(), FromContext(context.Background()))
	})

	t.Run("request id is attached", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		ctx := NewContext(context.Background(), zap.New(core).Sugar())

		ctx, log := WithRequestID(ctx, "abc")
		log.Info("hello")
		FromContext(ctx).Infof("hello %s", "again")

		require.Equal(t, 2, logs.Len())
		for _, entry := range logs.All() {
			require.Equal(t, "abc", entry.ContextMap()["requestID"])
		}
	})
}
