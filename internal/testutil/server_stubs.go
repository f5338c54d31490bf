package testutil

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/preston-bernstein/nhl-fantasy-update/internal/scheduler"
)

// StubScheduler stands in for the daily delivery loop.
type StubScheduler struct {
	RunErr    error
	StopErr   error
	StatusVal scheduler.Status

	mu         sync.Mutex
	startCalls int
	stopCalls  int
	runCalls   int
}

func (s *StubScheduler) Start(ctx context.Context) {
	_ = ctx
	s.mu.Lock()
	s.startCalls++
	s.mu.Unlock()
}

func (s *StubScheduler) Stop(ctx context.Context) error {
	_ = ctx
	s.mu.Lock()
	s.stopCalls++
	s.mu.Unlock()
	return s.StopErr
}

func (s *StubScheduler) RunOnce(ctx context.Context) error {
	_ = ctx
	s.mu.Lock()
	s.runCalls++
	s.mu.Unlock()
	return s.RunErr
}

func (s *StubScheduler) Status() scheduler.Status {
	return s.StatusVal
}

// Calls returns the Start, Stop and RunOnce counts.
func (s *StubScheduler) Calls() (start, stop, run int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startCalls, s.stopCalls, s.runCalls
}

// StubHTTPServer implements httpServer for tests.
type StubHTTPServer struct {
	AddrVal       string
	HandlerVal    http.Handler
	ListenCalls   int
	ShutdownCalls int
	ListenErr     error
	ShutdownErr   error
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.ListenCalls++
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.ShutdownCalls++
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	return s.HandlerVal
}

// BlockingHTTPServer allows simulating a shutdown that waits on an unblock channel.
type BlockingHTTPServer struct {
	AddrVal       string
	HandlerVal    http.Handler
	ShutdownCalls int
	Unblock       chan struct{}
}

func (b *BlockingHTTPServer) ListenAndServe() error {
	return nil
}

func (b *BlockingHTTPServer) Shutdown(ctx context.Context) error {
	b.ShutdownCalls++
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.Unblock:
		return nil
	}
}

func (b *BlockingHTTPServer) Addr() string {
	return b.AddrVal
}

func (b *BlockingHTTPServer) Handler() http.Handler {
	return b.HandlerVal
}

// ErrHTTPServer fails ListenAndServe; Shutdown increments a counter.
type ErrHTTPServer struct {
	mu            sync.Mutex
	shutdownCalls int
}

func (e *ErrHTTPServer) ListenAndServe() error {
	return errors.New("listen failure")
}

func (e *ErrHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	e.mu.Lock()
	e.shutdownCalls++
	e.mu.Unlock()
	return nil
}

func (e *ErrHTTPServer) Addr() string {
	return ":0"
}

func (e *ErrHTTPServer) Handler() http.Handler {
	return http.NewServeMux()
}

// ShutdownCalls returns how many times Shutdown ran.
func (e *ErrHTTPServer) ShutdownCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.shutdownCalls
}

// CloseableHTTPServer returns ErrServerClosed from ListenAndServe.
type CloseableHTTPServer struct {
	mu            sync.Mutex
	shutdownCalls int
}

func (c *CloseableHTTPServer) ListenAndServe() error {
	return http.ErrServerClosed
}

func (c *CloseableHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	c.mu.Lock()
	c.shutdownCalls++
	c.mu.Unlock()
	return nil
}

func (c *CloseableHTTPServer) Addr() string {
	return ":0"
}

func (c *CloseableHTTPServer) Handler() http.Handler {
	return http.NewServeMux()
}

// ShutdownCalls returns how many times Shutdown ran.
func (c *CloseableHTTPServer) ShutdownCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.shutdownCalls
}
