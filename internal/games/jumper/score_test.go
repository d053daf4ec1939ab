package jumper

import (
	"context"
	"testing"
	"time"

	"github.com/vovakirdan/tui-jumper/internal/audio"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

func activeCarrot() *Collectible {
	c := NewCollectible(28, 26)
	c.Activate(0, 0)
	return c
}

func TestScoreBelowBest(t *testing.T) {
	store := &fakeStore{best: 5}
	rec := &recordingAudio{}
	tracker := NewScoreTracker(store, rec)

	for i := 0; i < 3; i++ {
		tracker.Collect(activeCarrot())
	}

	if tracker.Collected() != 3 {
		t.Errorf("Collected() = %d, expected 3", tracker.Collected())
	}
	if tracker.Highest() != 5 {
		t.Errorf("Highest() = %d, expected 5", tracker.Highest())
	}
	if tracker.CarrotsText() != "Carrots: 3" {
		t.Errorf("CarrotsText() = %q, expected %q", tracker.CarrotsText(), "Carrots: 3")
	}
	if tracker.HighestText() != "Highest: 5" {
		t.Errorf("HighestText() = %q, expected %q", tracker.HighestText(), "Highest: 5")
	}
	if len(store.saved) != 0 {
		t.Errorf("store saved %v, expected no writes", store.saved)
	}
	if rec.count(audio.SoundPickup) != 3 {
		t.Errorf("pickup sound played %d times, expected 3", rec.count(audio.SoundPickup))
	}
}

func TestScoreBeatsBestAndPersists(t *testing.T) {
	kv := storage.NewMemoryKV()
	kv.Put(context.Background(), storage.KeyHighestScore, "5")
	best := storage.NewBestScore(kv, nil)
	best.Load(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		best.Run(ctx)
	}()

	tracker := NewScoreTracker(best, audio.Nop{})
	for i := 0; i < 6; i++ {
		tracker.Collect(activeCarrot())
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("best score writer did not stop")
	}

	if tracker.Highest() != 6 {
		t.Errorf("Highest() = %d, expected 6", tracker.Highest())
	}
	if tracker.HighestText() != "Highest: 6" {
		t.Errorf("HighestText() = %q", tracker.HighestText())
	}
	if value, _, _ := kv.Get(context.Background(), storage.KeyHighestScore); value != "6" {
		t.Errorf("persisted value = %q, expected %q", value, "6")
	}
}

func TestScoreIgnoresInactiveCollectible(t *testing.T) {
	tracker := NewScoreTracker(&fakeStore{}, audio.Nop{})
	c := activeCarrot()

	tracker.Collect(c)
	tracker.Collect(c)
	tracker.Collect(nil)

	if tracker.Collected() != 1 {
		t.Errorf("Collected() = %d, expected 1", tracker.Collected())
	}
	if c.Active() || c.Visible() || c.Body().Enable {
		t.Error("collected carrot should be hidden with collision disabled")
	}
}

func TestScoreResetKeepsHighest(t *testing.T) {
	store := &fakeStore{best: 1}
	tracker := NewScoreTracker(store, audio.Nop{})

	for i := 0; i < 4; i++ {
		tracker.Collect(activeCarrot())
	}
	tracker.Reset()

	if tracker.Collected() != 0 || tracker.CarrotsText() != "Carrots: 0" {
		t.Errorf("after Reset: Collected() = %d, text %q", tracker.Collected(), tracker.CarrotsText())
	}
	if tracker.Highest() != 4 {
		t.Errorf("Highest() = %d, expected 4 to survive Reset", tracker.Highest())
	}
}

func TestScoreCountIsMonotonic(t *testing.T) {
	tracker := NewScoreTracker(&fakeStore{}, audio.Nop{})
	prev, prevBest := 0, 0
	for i := 0; i < 20; i++ {
		c := activeCarrot()
		if i%3 == 0 {
			c.Deactivate()
		}
		tracker.Collect(c)
		if tracker.Collected() < prev || tracker.Highest() < prevBest {
			t.Fatalf("score went backwards at %d", i)
		}
		prev, prevBest = tracker.Collected(), tracker.Highest()
	}
}

func TestScoreFollowsBestRaisedElsewhere(t *testing.T) {
	store := &fakeStore{best: 5}
	tracker := NewScoreTracker(store, audio.Nop{})

	// Another game sharing the store beats the best.
	store.best = 9
	tracker.Sync()
	if tracker.HighestText() != "Highest: 9" {
		t.Errorf("HighestText() after Sync = %q, expected %q", tracker.HighestText(), "Highest: 9")
	}

	store.best = 12
	for i := 0; i < 6; i++ {
		tracker.Collect(activeCarrot())
	}
	if tracker.Highest() != 12 {
		t.Errorf("Highest() = %d, expected the shared 12", tracker.Highest())
	}
	if len(store.saved) != 0 {
		t.Errorf("store saved %v, expected no writes below the shared best", store.saved)
	}
}
