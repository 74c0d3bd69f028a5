package guard_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/todolists-api/internal/adapters/storage/guard"
	"github.com/jsamuelsen11/todolists-api/internal/domain"
	"github.com/jsamuelsen11/todolists-api/internal/domain/todoitem"
	"github.com/jsamuelsen11/todolists-api/internal/domain/todolist"
	"github.com/jsamuelsen11/todolists-api/internal/platform/config"
	"github.com/jsamuelsen11/todolists-api/internal/platform/telemetry"
	"github.com/jsamuelsen11/todolists-api/mocks"
)

var errDisk = errors.New("disk I/O error")

func testConfig() config.BreakerConfig {
	return config.BreakerConfig{
		MaxFailures:   2,
		Timeout:       50 * time.Millisecond,
		HalfOpenLimit: 1,
	}
}

func TestBreaker_PassesResultsThrough(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockTodoListRepository(t)
	b := guard.NewBreaker("store", testConfig(), nil, nil)
	lists := b.TodoLists(repo)

	want := &todolist.TodoList{ID: 3, Name: "Groceries"}
	repo.EXPECT().FindByID(mock.Anything, int64(3)).Return(want, nil)

	got, err := lists.FindByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("FindByID() error = %v, want nil", err)
	}
	if got != want {
		t.Errorf("FindByID() = %+v, want %+v", got, want)
	}
}

func TestBreaker_TripsAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockTodoItemRepository(t)
	b := guard.NewBreaker("store", testConfig(), nil, nil)
	items := b.TodoItems(repo)
	ctx := context.Background()

	repo.EXPECT().FindAll(mock.Anything, todoitem.Filter{}).Return(nil, errDisk).Times(2)

	for range 2 {
		_, err := items.FindAll(ctx, todoitem.Filter{})
		if !errors.Is(err, errDisk) {
			t.Fatalf("FindAll() error = %v, want %v", err, errDisk)
		}
	}

	// Open: the repository is not called again.
	_, err := items.FindAll(ctx, todoitem.Filter{})
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("FindAll() with open breaker error = %v, want ErrUnavailable", err)
	}

	if err := b.HealthCheck(ctx); err == nil || !strings.Contains(err.Error(), "open") {
		t.Errorf("HealthCheck() = %v, want open-breaker error", err)
	}
}

func TestBreaker_NotFoundDoesNotTrip(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockTodoItemRepository(t)
	b := guard.NewBreaker("store", testConfig(), nil, nil)
	items := b.TodoItems(repo)
	ctx := context.Background()

	repo.EXPECT().FindByID(mock.Anything, int64(999)).Return(nil, domain.ErrNotFound).Times(5)

	for range 5 {
		_, err := items.FindByID(ctx, 999)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("FindByID() error = %v, want ErrNotFound", err)
		}
	}

	if err := b.HealthCheck(ctx); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
}

func TestBreaker_SharedAcrossRepositories(t *testing.T) {
	t.Parallel()

	listRepo := mocks.NewMockTodoListRepository(t)
	itemRepo := mocks.NewMockTodoItemRepository(t)
	b := guard.NewBreaker("store", testConfig(), nil, nil)
	lists := b.TodoLists(listRepo)
	items := b.TodoItems(itemRepo)
	ctx := context.Background()

	listRepo.EXPECT().Delete(mock.Anything, int64(1)).Return(errDisk).Times(2)

	for range 2 {
		_ = lists.Delete(ctx, 1)
	}

	err := items.Delete(ctx, 1)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("items.Delete() error = %v, want ErrUnavailable", err)
	}
}

func TestBreaker_HalfOpenAfterTimeout(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockTodoListRepository(t)
	b := guard.NewBreaker("store", testConfig(), nil, nil)
	lists := b.TodoLists(repo)
	ctx := context.Background()

	repo.EXPECT().FindAll(mock.Anything).Return(nil, errDisk).Times(2)
	for range 2 {
		_, _ = lists.FindAll(ctx)
	}

	time.Sleep(80 * time.Millisecond)

	err := b.HealthCheck(ctx)
	if err == nil || !strings.Contains(err.Error(), "half-open") {
		t.Fatalf("HealthCheck() = %v, want half-open error", err)
	}

	repo.EXPECT().FindAll(mock.Anything).Return([]todolist.TodoList{}, nil).Once()
	if _, err := lists.FindAll(ctx); err != nil {
		t.Fatalf("FindAll() probe error = %v, want nil", err)
	}
	if err := b.HealthCheck(ctx); err != nil {
		t.Errorf("HealthCheck() after successful probe = %v, want nil", err)
	}
}

func TestBreaker_Name(t *testing.T) {
	t.Parallel()

	b := guard.NewBreaker("store-breaker", testConfig(), nil, nil)
	if b.Name() != "store-breaker" {
		t.Errorf("Name() = %q, want %q", b.Name(), "store-breaker")
	}
}

func TestBreaker_RecordsMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	metrics, err := telemetry.NewMetrics(mp, "test")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	repo := mocks.NewMockTodoListRepository(t)
	b := guard.NewBreaker("store", testConfig(), metrics, nil)
	lists := b.TodoLists(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(&todolist.TodoList{ID: 1, Name: "a"}, nil)
	if _, err := lists.Create(context.Background(), todolist.New("a")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "store.operation.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("store.operation.total data type = %T, want Sum[int64]", m.Data)
			}
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	if total != 1 {
		t.Errorf("store.operation.total = %d, want 1", total)
	}
}
