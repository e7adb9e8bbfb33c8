package server

import (
	"sync"
	"testing"
	"time"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics()

	snap := m.GetSnapshot()
	if snap.RequestsTotal != 0 || snap.MovesTotal != 0 || snap.MovesRejected != 0 || snap.ServerErrors != 0 {
		t.Errorf("Expected zero counters, got %+v", snap)
	}
	if time.Since(m.StartTime) > time.Second {
		t.Errorf("Expected StartTime to be recent, got %v", m.StartTime)
	}
}

func TestMetrics_ConcurrentIncrements(t *testing.T) {
	m := NewMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				m.IncRequests()
				m.IncMoves()
			}
		}()
	}
	wg.Wait()

	snap := m.GetSnapshot()
	if snap.RequestsTotal != 1000 {
		t.Errorf("Expected RequestsTotal 1000, got %d", snap.RequestsTotal)
	}
	if snap.MovesTotal != 1000 {
		t.Errorf("Expected MovesTotal 1000, got %d", snap.MovesTotal)
	}
}
