package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todolists-api/internal/domain"
	"github.com/jsamuelsen11/todolists-api/internal/domain/todolist"
)

func TestNewTodoListStore(t *testing.T) {
	store := NewTodoListStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.lists)
}

func TestTodoListStore_CreateAssignsSequentialIDs(t *testing.T) {
	store := NewTodoListStore()
	ctx := context.Background()

	first, err := store.Create(ctx, todolist.New("Groceries"))
	require.NoError(t, err)
	second, err := store.Create(ctx, todolist.New("Work"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestTodoListStore_FindAllOrdered(t *testing.T) {
	store := NewTodoListStore()
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c", "d"} {
		_, err := store.Create(ctx, todolist.New(name))
		require.NoError(t, err)
	}

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	for i, l := range all {
		assert.Equal(t, int64(i+1), l.ID)
	}
}

func TestTodoListStore_FindAllEmpty(t *testing.T) {
	all, err := NewTodoListStore().FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestTodoListStore_FindByID_NotFound(t *testing.T) {
	_, err := NewTodoListStore().FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTodoListStore_SaveReplaces(t *testing.T) {
	store := NewTodoListStore()
	ctx := context.Background()

	created, err := store.Create(ctx, todolist.New("Groceries"))
	require.NoError(t, err)

	_, err = store.Save(ctx, &todolist.TodoList{ID: created.ID, Name: "Food"})
	require.NoError(t, err)

	got, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Food", got.Name)
}

func TestTodoListStore_SaveWithoutIDCreates(t *testing.T) {
	store := NewTodoListStore()

	saved, err := store.Save(context.Background(), todolist.New("Groceries"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)
}

func TestTodoListStore_DeleteDoesNotReuseIDs(t *testing.T) {
	store := NewTodoListStore()
	ctx := context.Background()

	first, err := store.Create(ctx, todolist.New("a"))
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, first.ID))
	require.NoError(t, store.Delete(ctx, first.ID))

	_, err = store.FindByID(ctx, first.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	second, err := store.Create(ctx, todolist.New("b"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

func TestTodoListStore_ReturnedValuesAreCopies(t *testing.T) {
	store := NewTodoListStore()
	ctx := context.Background()

	created, err := store.Create(ctx, todolist.New("Groceries"))
	require.NoError(t, err)
	created.Name = "mutated"

	got, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", got.Name)
}

func TestTodoListStore_ConcurrentCreate(t *testing.T) {
	store := NewTodoListStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Create(ctx, todolist.New("x"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)
	assert.Equal(t, int64(50), all[49].ID)
}
