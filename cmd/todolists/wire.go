package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/todolists-api/internal/adapters/http"
	"github.com/jsamuelsen11/todolists-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todolists-api/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todolists-api/internal/adapters/storage/guard"
	"github.com/jsamuelsen11/todolists-api/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/todolists-api/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/todolists-api/internal/app"
	"github.com/jsamuelsen11/todolists-api/internal/platform/config"
	"github.com/jsamuelsen11/todolists-api/internal/platform/health"
	"github.com/jsamuelsen11/todolists-api/internal/platform/telemetry"
	"github.com/jsamuelsen11/todolists-api/internal/ports"
)

const breakerName = "store-breaker"

// storeBundle is the repository pair for the configured driver. checker is
// nil for the memory driver.
type storeBundle struct {
	lists   ports.TodoListRepository
	items   ports.TodoItemRepository
	checker ports.HealthChecker
	close   func() error
}

func openStore(ctx context.Context, cfg config.StorageConfig) (*storeBundle, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return &storeBundle{
			lists: memory.NewTodoListStore(),
			items: memory.NewTodoItemStore(),
			close: func() error { return nil },
		}, nil
	case config.DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.Path, cfg.BusyTimeout)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return &storeBundle{
			lists:   store.TodoLists(),
			items:   store.TodoItems(),
			checker: store,
			close:   store.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}

// application is the resolved dependency graph.
type application struct {
	server  *adapthttp.Server
	handler nethttp.Handler
	store   *storeBundle
	logger  *slog.Logger
}

func (a *application) close() {
	if err := a.store.close(); err != nil {
		a.logger.Error("closing store", slog.Any("error", err))
	}
}

// newApp opens the store, builds the DI container and resolves the server,
// which eagerly wires the full graph. metrics may be nil.
func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) (*application, error) {
	store, err := openStore(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}

	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)
	do.ProvideValue(injector, store)

	registerDependencies(injector, cfg, logger)

	return resolveApp(injector, store, logger)
}

// resolveApp resolves the server and handler from injector. The store is
// closed when resolution fails, since nothing else owns it yet.
func resolveApp(injector do.Injector, store *storeBundle, logger *slog.Logger) (*application, error) {
	a := &application{store: store, logger: logger}

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("resolving server: %w", err)
	}
	handler, err := do.Invoke[nethttp.Handler](injector)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("resolving handler: %w", err)
	}

	a.server = server
	a.handler = handler
	return a, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {

	do.Provide(injector, func(i do.Injector) (*guard.Breaker, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return guard.NewBreaker(breakerName, cfg.Breaker, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoListService, error) {
		store := do.MustInvoke[*storeBundle](i)
		breaker := do.MustInvoke[*guard.Breaker](i)
		return app.NewTodoListService(breaker.TodoLists(store.lists), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoItemService, error) {
		store := do.MustInvoke[*storeBundle](i)
		breaker := do.MustInvoke[*guard.Breaker](i)
		return app.NewTodoItemService(breaker.TodoItems(store.items), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		store := do.MustInvoke[*storeBundle](i)
		breaker := do.MustInvoke[*guard.Breaker](i)

		registry := health.New()
		if store.checker != nil {
			registry.Register(store.checker)
		}
		registry.Register(breaker)
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TodoListHandler, error) {
		return handlers.NewTodoListHandler(do.MustInvoke[ports.TodoListService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TodoItemHandler, error) {
		return handlers.NewTodoItemHandler(do.MustInvoke[ports.TodoItemService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		listH := do.MustInvoke[*handlers.TodoListHandler](i)
		itemH := do.MustInvoke[*handlers.TodoItemHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(cfg.Server.BasePath, listH, itemH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.Logging(logger),
			middleware.OpenTelemetry(metrics),
			middleware.RateLimit(cfg.Server.RateLimit.RequestsPerSecond, cfg.Server.RateLimit.BurstSize),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
