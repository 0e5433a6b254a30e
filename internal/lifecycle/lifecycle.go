// Package lifecycle coordinates startup and shutdown hooks for long-running systems.
package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// ReadinessChecker reports whether startup has completed.
type ReadinessChecker interface {
	Ready() bool
}

// Coordinator owns the application context. Startup hooks run concurrently
// when WaitForStartup is called; shutdown hooks are launched immediately and
// are expected to block on Context().Done() before releasing resources.
type Coordinator struct {
	ctx        context.Context
	cancel     context.CancelFunc
	startupWg  sync.WaitGroup
	shutdownWg sync.WaitGroup
	ready      atomic.Bool
	mu         sync.Mutex
	startups   []func()
}

func New() *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Context is cancelled when Shutdown begins.
func (c *Coordinator) Context() context.Context {
	return c.ctx
}

func (c *Coordinator) OnStartup(fn func()) {
	c.mu.Lock()
	c.startups = append(c.startups, fn)
	c.mu.Unlock()
}

func (c *Coordinator) OnShutdown(fn func()) {
	c.shutdownWg.Add(1)
	go func() {
		defer c.shutdownWg.Done()
		fn()
	}()
}

// WaitForStartup runs every registered startup hook, waits for all of them,
// then marks the coordinator ready.
func (c *Coordinator) WaitForStartup() {
	c.mu.Lock()
	hooks := c.startups
	c.startups = nil
	c.mu.Unlock()

	for _, fn := range hooks {
		c.startupWg.Add(1)
		go func(fn func()) {
			defer c.startupWg.Done()
			fn()
		}(fn)
	}

	c.startupWg.Wait()
	c.ready.Store(true)
}

func (c *Coordinator) Ready() bool {
	return c.ready.Load()
}

// Shutdown cancels the context and waits up to timeout for shutdown hooks.
func (c *Coordinator) Shutdown(timeout time.Duration) error {
	c.ready.Store(false)
	c.cancel()

	done := make(chan struct{})
	go func() {
		c.shutdownWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("shutdown timeout after %v", timeout)
	}
}
