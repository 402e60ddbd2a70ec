package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PsyYak/devopsai-b2c-monorepo/internal/config"
	testhelpers "github.com/PsyYak/devopsai-b2c-monorepo/internal/test"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/usecase"
)

type seederStub struct {
	n     int
	err   error
	calls int
}

func (s *seederStub) Seed(context.Context) (int, error) {
	s.calls++
	return s.n, s.err
}

func TestNewHTTPServer(t *testing.T) {
	cfg := &config.Config{RunAddress: ":9999"}
	router := gin.New()
	server := newHTTPServer(serverParams{Config: cfg, Router: router})
	if server.Addr != ":9999" {
		t.Fatalf("expected address :9999, got %q", server.Addr)
	}
	if server.Handler != router {
		t.Fatalf("expected handler to be router")
	}
}

func TestRegisterLifecycleStartStop(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	cfg := &config.Config{ShutdownTimeout: 100 * time.Millisecond}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     logger,
		Server:     server,
		Config:     cfg,
	})

	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected one hook registered, got %d", len(recorder.Hooks))
	}

	hook := recorder.Hooks[0]
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := hook.OnStart(ctx); err != nil {
		t.Fatalf("on start failed: %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = hook.OnStop(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected on stop to finish")
	}
}

func TestRegisterLifecycleShutdownOnServerError(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	server := &http.Server{Addr: "bad addr"}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     logger,
		Server:     server,
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	hook := recorder.Hooks[0]
	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("on start returned error: %v", err)
	}

	select {
	case <-shutdowner.Called:
	case <-time.After(time.Second):
		t.Fatal("expected shutdown to be triggered on server error")
	}

	_ = hook.OnStop(context.Background())
}

func TestAppendSeedHook(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	recorder := &testhelpers.LifecycleRecorder{}
	seeder := &seederStub{n: 3}
	appendSeedHook(recorder, seeder, logger)
	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected one hook, got %d", len(recorder.Hooks))
	}
	if err := recorder.Hooks[0].OnStart(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seeder.calls != 1 {
		t.Fatalf("expected seeder to be called once, got %d", seeder.calls)
	}

	recorder = &testhelpers.LifecycleRecorder{}
	appendSeedHook(recorder, &seederStub{err: errors.New("db down")}, logger)
	if err := recorder.Hooks[0].OnStart(context.Background()); err == nil {
		t.Fatal("expected seeding error to abort start")
	}
}

func TestRegisterCatalogSeedUsesFacade(t *testing.T) {
	repo := &testhelpers.ProductRepositoryStub{}
	facade := NewCatalogFacade(usecase.NewCatalogUseCase(repo), testhelpers.HealthCheckerStub{})
	recorder := &testhelpers.LifecycleRecorder{}

	registerCatalogSeed(seedParams{
		Lifecycle: recorder,
		Logger:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
		Facade:    facade,
	})

	if err := recorder.Hooks[0].OnStart(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.Upserted) != len(usecase.DefaultProducts()) {
		t.Fatalf("expected default products to be upserted, got %d", len(repo.Upserted))
	}
}
