package janitor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/party-one/internal/config"
	"github.com/pribylovaa/party-one/internal/models"
)

type fakeMaintainer struct {
	mu        sync.Mutex
	tokens    int
	orphans   int
	grace     time.Duration
	dryRun    bool
	deadline  bool
	tokensErr error
}

func (f *fakeMaintainer) PurgeExpiredTokens(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.tokens++
	_, f.deadline = ctx.Deadline()
	return 3, f.tokensErr
}

func (f *fakeMaintainer) PurgeOrphans(_ context.Context, grace time.Duration, dryRun bool) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.orphans++
	f.grace = grace
	f.dryRun = dryRun
	return []models.User{{ID: uuid.New()}}, nil
}

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func cfg() config.JanitorConfig {
	return config.JanitorConfig{
		Enabled:         true,
		TokensSchedule:  "@every 1h",
		OrphansSchedule: "@daily",
		OrphanGrace:     48 * time.Hour,
	}
}

func TestNew_RegistersJobs(t *testing.T) {
	j, err := New(&fakeMaintainer{}, quiet(), cfg(), time.Second)
	require.NoError(t, err)
	require.Len(t, j.cron.Entries(), 2)

	j.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	j.Stop(ctx)
}

func TestNew_RejectsBadSchedule(t *testing.T) {
	c := cfg()
	c.OrphansSchedule = "every tuesday"

	_, err := New(&fakeMaintainer{}, quiet(), c, time.Second)
	require.ErrorContains(t, err, "orphans schedule")
}

func TestJobs_CallService(t *testing.T) {
	f := &fakeMaintainer{}
	j, err := New(f, quiet(), cfg(), time.Second)
	require.NoError(t, err)

	j.PurgeTokens()
	j.PurgeOrphans()

	require.Equal(t, 1, f.tokens)
	require.True(t, f.deadline)
	require.Equal(t, 1, f.orphans)
	require.Equal(t, 48*time.Hour, f.grace)
	require.False(t, f.dryRun)
}

func TestJobs_ErrorDoesNotPanic(t *testing.T) {
	f := &fakeMaintainer{tokensErr: errors.New("db down")}
	j, err := New(f, quiet(), cfg(), 0)
	require.NoError(t, err)

	require.NotPanics(t, j.PurgeTokens)
	require.False(t, f.deadline)
}
