package main

import (
	"os"
	"testing"
	"time"

	"github.com/riskibarqy/matchday-scraper/internal/platform/logging"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGameDates(t *testing.T) {
	now := time.Date(2024, 10, 5, 21, 0, 0, 0, time.UTC)

	got := gameDates(nil, now)
	if len(got) != 1 || got[0] != "2024-10-05" {
		t.Fatalf("default dates = %v", got)
	}

	got = gameDates([]string{"2024-09-28,2024-10-01", " ", "2024-10-05"}, now)
	want := []string{"2024-09-28", "2024-10-01", "2024-10-05"}
	if len(got) != len(want) {
		t.Fatalf("dates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("dates = %v, want %v", got, want)
		}
	}
}

type syncCountingCore struct {
	zapcore.Core
	syncs int
}

func (c *syncCountingCore) Sync() error {
	c.syncs++
	return nil
}

func TestExitSyncsLoggerBeforeExiting(t *testing.T) {
	observed, _ := observer.New(zapcore.InfoLevel)
	core := &syncCountingCore{Core: observed}

	var (
		exitCode  = -1
		syncsSeen int
	)
	osExit = func(code int) {
		exitCode = code
		syncsSeen = core.syncs
	}
	t.Cleanup(func() { osExit = os.Exit })

	exit(logging.New(core), 1)

	if exitCode != 1 {
		t.Fatalf("exit code = %d, want 1", exitCode)
	}
	if syncsSeen != 1 {
		t.Fatalf("syncs before exit = %d, want 1", syncsSeen)
	}
}
