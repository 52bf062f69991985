package worker

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"tweet-sentiment/internal/storage"
)

type funcWorker func(ctx context.Context) error

func (f funcWorker) Start(ctx context.Context) error { return f(ctx) }

func TestManagerStopsOnCancel(t *testing.T) {
	var stopped atomic.Int32
	w := funcWorker(func(ctx context.Context) error {
		<-ctx.Done()
		stopped.Add(1)
		return nil
	})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewManager(w, w).Start(ctx) }()
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Start error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("manager did not stop")
	}
	if stopped.Load() != 2 {
		t.Errorf("stopped = %d, want 2", stopped.Load())
	}
}

func TestManagerFailingWorkerCancelsOthers(t *testing.T) {
	boom := errors.New("boom")
	failing := funcWorker(func(context.Context) error { return boom })
	waiting := funcWorker(func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})
	done := make(chan error, 1)
	go func() { done <- NewManager(failing, waiting).Start(context.Background()) }()
	select {
	case err := <-done:
		if !errors.Is(err, boom) {
			t.Fatalf("Start error = %v, want boom", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("manager did not stop after worker failure")
	}
}

func TestHTTPServerServesAndShutsDown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	w := &HTTPServer{
		Handler: http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(rw, "ok")
		}),
		Listener:        ln,
		ShutdownTimeout: time.Second,
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "ok" {
		t.Errorf("body = %q", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Start error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("server did not shut down")
	}
}

func TestHTTPServerListenError(t *testing.T) {
	w := &HTTPServer{Addr: "256.0.0.1:bad", Handler: http.NotFoundHandler()}
	if err := w.Start(context.Background()); err == nil {
		t.Fatalf("expected listen error")
	}
}

func TestStatsReporterInvalidSchedule(t *testing.T) {
	w := &StatsReporter{Store: storage.NewMemoryStore(), Schedule: "not a schedule"}
	if err := w.Start(context.Background()); err == nil {
		t.Fatalf("expected schedule error")
	}
}

func TestStatsReporterRunsAndStops(t *testing.T) {
	store := storage.NewMemoryStore()
	_ = store.RecordPosts(context.Background(), 3)
	w := &StatsReporter{Store: store, Schedule: "@every 1s"}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()
	w.runOnce(ctx)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Start error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("reporter did not stop")
	}
}
