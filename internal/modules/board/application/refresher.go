package application

import (
	"context"
	"sync"
	"time"
)

// Refresher keeps the store in step with the remote state: one immediate
// load of all three collections at startup, then the same reload on a
// fixed cadence. The three loads fire concurrently and are isolated from
// each other; each one fails open on its own, so a dead table never blocks
// the rest. In-flight loads are not cancelled when the next tick arrives:
// every reload fully replaces its collection, so last-to-resolve wins and
// no cross-tick ordering is required.
type Refresher struct {
	store    *Store
	interval time.Duration

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

const DefaultRefreshInterval = 30 * time.Second

func NewRefresher(store *Store, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Refresher{
		store:    store,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run blocks until Stop is called or ctx ends. Call it on its own
// goroutine.
func (r *Refresher) Run(ctx context.Context) {
	defer close(r.done)

	r.RefreshAll(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.RefreshAll(ctx)
		case <-r.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

// RefreshAll reloads the three collections concurrently and waits for all
// of them. Failures are already swallowed and logged inside each load.
func (r *Refresher) RefreshAll(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		r.store.LoadMessages(ctx)
	}()
	go func() {
		defer wg.Done()
		r.store.LoadTeamMembers(ctx)
	}()
	go func() {
		defer wg.Done()
		r.store.LoadPriorityAlert(ctx)
	}()
	wg.Wait()
}

// Stop ends the refresh loop and waits for it to exit. Safe to call more
// than once.
func (r *Refresher) Stop() {
	r.stopOnce.Do(func() {
		close(r.stop)
	})
	<-r.done
}
