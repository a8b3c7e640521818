package workers

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/mock"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/internal/verification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSweeper_SweepUsesCurrentTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessionStore := mock.NewMockSessionStore(ctrl)

	now := time.UnixMilli(1_700_000_000_000)
	sessionStore.EXPECT().SweepExpired(gomock.Any(), int64(1_700_000_000_000)).Return(2)

	s := NewSweeper(sessionStore, config.Workers{SweepInterval: time.Minute}, logger.Nop()).(*sweeper)
	s.now = func() time.Time { return now }

	assert.Equal(t, 2, s.sweep(context.Background()))
}

func TestSweeper_DropsOnlyExpiredRecords(t *testing.T) {
	ctx := context.Background()
	sessionStore := store.NewMemorySessionStore(logger.Nop())

	start := time.UnixMilli(1_700_000_000_000)
	require.NoError(t, sessionStore.CreateSession(ctx, "old"))
	require.NoError(t, sessionStore.CreateSession(ctx, "fresh"))
	require.NoError(t, sessionStore.SaveRecord(ctx, "old", verification.Record(verification.NowMillis(start))))

	later := start.Add(verification.Window)
	require.NoError(t, sessionStore.SaveRecord(ctx, "fresh", verification.Record(verification.NowMillis(later.Add(-time.Minute)))))

	s := NewSweeper(sessionStore, config.Workers{SweepInterval: time.Minute}, logger.Nop()).(*sweeper)
	s.now = func() time.Time { return later }

	assert.Equal(t, 1, s.sweep(ctx))

	rec, err := sessionStore.GetRecord(ctx, "old")
	require.NoError(t, err)
	assert.Nil(t, rec)
	assert.True(t, sessionStore.SessionExists(ctx, "old"))

	rec, err = sessionStore.GetRecord(ctx, "fresh")
	require.NoError(t, err)
	assert.NotNil(t, rec)
}

func TestSweeper_RunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessionStore := mock.NewMockSessionStore(ctrl)
	sessionStore.EXPECT().SweepExpired(gomock.Any(), gomock.Any()).Return(0).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	w := NewSweeper(sessionStore, config.Workers{SweepInterval: 5 * time.Millisecond}, logger.Nop())

	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancellation")
	}
}
