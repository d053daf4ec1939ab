package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

// runBest starts the writer and returns a stop function that flushes it.
func runBest(t *testing.T, b *BestScore) (stop func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := b.Run(ctx); err != nil {
			t.Errorf("Run() returned error: %v", err)
		}
	}()
	return func() {
		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("Run() did not stop")
		}
	}
}

func TestBestScoreLoadMissingOrInvalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
		set   bool
		want  int
	}{
		{"absent", "", false, 0},
		{"valid", "12", true, 12},
		{"garbage", "twelve", true, 0},
		{"empty", "", true, 0},
		{"negative", "-3", true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kv := NewMemoryKV()
			if tc.set {
				kv.Put(context.Background(), KeyHighestScore, tc.value)
			}
			b := NewBestScore(kv, nil)
			if got := b.Load(context.Background()); got != tc.want {
				t.Errorf("Load() = %d, expected %d", got, tc.want)
			}
		})
	}
}

func TestBestScoreSaveDoesNotBlockWithoutWriter(t *testing.T) {
	b := NewBestScore(NewMemoryKV(), nil)

	done := make(chan struct{})
	go func() {
		for i := 1; i <= 100; i++ {
			b.Save(i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Save() blocked with no writer running")
	}

	if b.Best() != 100 {
		t.Errorf("Best() = %d, expected 100", b.Best())
	}
}

func TestBestScorePersistsLatest(t *testing.T) {
	kv := NewMemoryKV()
	b := NewBestScore(kv, nil)
	b.Load(context.Background())

	stop := runBest(t, b)
	b.Save(5)
	b.Save(6)
	stop()

	value, ok, _ := kv.Get(context.Background(), KeyHighestScore)
	if !ok || value != "6" {
		t.Errorf("stored value = %q (present %v), expected %q", value, ok, "6")
	}
}

func TestBestScoreNeverLowersStoredValue(t *testing.T) {
	kv := NewMemoryKV()
	kv.Put(context.Background(), KeyHighestScore, "9")

	b := NewBestScore(kv, nil)
	stop := runBest(t, b)
	b.Save(4)
	stop()

	if value, _, _ := kv.Get(context.Background(), KeyHighestScore); value != "9" {
		t.Errorf("stored value = %q, expected %q to survive a lower save", value, "9")
	}
}

func TestBestScoreReset(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{"stored value", "9"},
		{"nothing stored", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			kv := NewMemoryKV()
			if tc.stored != "" {
				kv.Put(ctx, KeyHighestScore, tc.stored)
			}
			b := NewBestScore(kv, nil)
			b.Load(ctx)

			if err := b.Reset(ctx); err != nil {
				t.Fatalf("Reset() failed: %v", err)
			}
			if b.Best() != 0 {
				t.Errorf("Best() after Reset = %d, expected 0", b.Best())
			}
			if _, ok, _ := kv.Get(ctx, KeyHighestScore); ok {
				t.Error("stored value should be gone after Reset")
			}
			if got := b.Load(ctx); got != 0 {
				t.Errorf("Load() after Reset = %d, expected 0", got)
			}
		})
	}
}

func TestBestScoreWithSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "best.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	b := NewBestScore(store, nil)
	if got := b.Load(context.Background()); got != 0 {
		t.Fatalf("Load() on new database = %d, expected 0", got)
	}
	stop := runBest(t, b)
	b.Save(7)
	stop()
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	if got := NewBestScore(reopened, nil).Load(context.Background()); got != 7 {
		t.Errorf("Load() after restart = %d, expected 7", got)
	}
}
