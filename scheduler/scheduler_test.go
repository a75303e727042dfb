package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"sensorhub/models"
)

type fakeStats struct {
	pingErr  error
	collects atomic.Int32
}

func (f *fakeStats) Ping(context.Context) error { return f.pingErr }

func (f *fakeStats) Collect(context.Context) (*models.Stats, error) {
	f.collects.Add(1)
	return &models.Stats{SensorReadings: 3}, nil
}

func TestReportStats(t *testing.T) {
	f := &fakeStats{}
	s := ReportStats(context.Background(), f)
	if s == nil || s.SensorReadings != 3 {
		t.Fatalf("ReportStats() = %+v", s)
	}

	f.pingErr = errors.New("down")
	if s := ReportStats(context.Background(), f); s != nil {
		t.Errorf("ReportStats() with failed ping = %+v, want nil", s)
	}
	if got := f.collects.Load(); got != 1 {
		t.Errorf("collects = %d, want 1 (no collect after failed ping)", got)
	}
}

func TestStartScheduler_RunsUntilCancelled(t *testing.T) {
	f := &fakeStats{}
	ctx, cancel := context.WithCancel(context.Background())

	StartScheduler(ctx, f, 10*time.Millisecond)

	deadline := time.Now().Add(2 * time.Second)
	for f.collects.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	if got := f.collects.Load(); got < 3 {
		t.Fatalf("collects = %d, want >= 3", got)
	}

	time.Sleep(30 * time.Millisecond)
	settled := f.collects.Load()
	time.Sleep(50 * time.Millisecond)
	if f.collects.Load() != settled {
		t.Error("scheduler kept running after cancel")
	}
}
