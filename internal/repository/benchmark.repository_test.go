package repository

import (
	"errors"
	"portfoliosim/internal/config"
	"portfoliosim/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBenchmarkRepository(t *testing.T) {
	t.Run("built-in table", func(t *testing.T) {
		repo := NewBenchmarkRepository(nil)

		b, err := repo.Get(2020)
		require.NoError(t, err)
		require.Equal(t, "3230.78", b.IndexLevelAtStart.String())
		require.Equal(t, "5950.25", b.IndexLevelNow.String())
		require.Equal(t, "0.045", b.SavingsRate.String())

		list := repo.List()
		require.Len(t, list, 27)
		require.Equal(t, 2000, list[0].Year)
		require.Equal(t, 2026, list[len(list)-1].Year)
	})

	t.Run("unknown year", func(t *testing.T) {
		_, err := NewBenchmarkRepository(nil).Get(1999)
		require.True(t, errors.Is(err, domain.ErrUnknownBenchmarkYear))
	})

	t.Run("config overrides", func(t *testing.T) {
		cfg := config.Default()
		cfg.SavingsRate = 0.03
		cfg.Benchmarks = map[int]config.BenchmarkLevel{
			2020: {Start: 3000, Now: 6600},
			1995: {Start: 459.27, Now: 6600},
		}
		repo := NewBenchmarkRepository(cfg)

		b, err := repo.Get(2020)
		require.NoError(t, err)
		require.Equal(t, "1.2", b.MarketReturn().String())
		require.Equal(t, "0.03", repo.SavingsRate().String())

		_, err = repo.Get(1995)
		require.NoError(t, err)
		require.Len(t, repo.List(), 28)
	})
}
