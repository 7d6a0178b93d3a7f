package utils

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// HealthCheck probes one backing service.
type HealthCheck func(ctx context.Context) error

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Redis     bool      `json:"redis"`
	Firebase  bool      `json:"firebase"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// CheckHealth runs both probes concurrently with a short deadline each.
func CheckHealth(ctx context.Context, redisCheck, firebaseCheck HealthCheck) HealthStatus {
	var status HealthStatus
	var g errgroup.Group
	g.Go(func() error {
		status.Redis = probe(ctx, redisCheck)
		return nil
	})
	g.Go(func() error {
		status.Firebase = probe(ctx, firebaseCheck)
		return nil
	})
	_ = g.Wait()
	status.CheckedAt = time.Now()
	return status
}

func probe(ctx context.Context, check HealthCheck) bool {
	if check == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return check(ctx) == nil
}

// StartHealthMonitor performs periodic health checks and updates in-memory state
// until ctx is cancelled.
func StartHealthMonitor(ctx context.Context, interval time.Duration, redisCheck, firebaseCheck HealthCheck) {
	update := func() {
		status := CheckHealth(ctx, redisCheck, firebaseCheck)
		mu.Lock()
		currentHealth = status
		mu.Unlock()
	}
	update()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				update()
			}
		}
	}()
}
