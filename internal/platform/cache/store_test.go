package cache

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (string, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if v != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore[int](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (int, error) {
		calls.Add(1)
		return 42, nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore[int](time.Minute)
	boom := errors.New("boom")

	if _, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected failed load to leave store empty, got %d entries", store.Len())
	}
}

func TestStore_ExpiresAndInvalidates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store := NewStore[string](time.Minute)
	store.now = func() time.Time { return now }

	store.Set(ctx, "standings:cup:aa", "a")
	store.Set(ctx, "standings:cup:bb", "b")
	store.Set(ctx, "standings:plate:cc", "c")

	if err := store.Invalidate(ctx, "standings:cup:"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, ok := store.Get(ctx, "standings:cup:aa"); ok {
		t.Fatalf("expected cup entry to be invalidated")
	}
	if _, ok := store.Get(ctx, "standings:plate:cc"); !ok {
		t.Fatalf("expected plate entry to survive")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(ctx, "standings:plate:cc"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestStore_SetSweepsExpiredEntries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store := NewStore[int](time.Minute)
	store.now = func() time.Time { return now }

	for i := range 500 {
		store.Set(ctx, "standings:cup:"+strconv.Itoa(i), i)
	}
	if store.Len() != 500 {
		t.Fatalf("expected 500 live entries, got %d", store.Len())
	}

	now = now.Add(2 * time.Minute)
	if _, err := store.GetOrLoad(ctx, "standings:cup:fresh", func(context.Context) (int, error) { return 1, nil }); err != nil {
		t.Fatalf("GetOrLoad error: %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("expected expired keys to be swept, got %d entries", store.Len())
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
