package jumper

import (
	"fmt"

	"github.com/vovakirdan/tui-jumper/internal/audio"
)

// ScoreStore is the durable best score. Save must not block.
type ScoreStore interface {
	Best() int
	Save(score int)
}

// sessionStore keeps the best score in memory only.
type sessionStore struct {
	best int
}

func (s *sessionStore) Best() int { return s.best }

func (s *sessionStore) Save(score int) {
	if score > s.best {
		s.best = score
	}
}

// ScoreTracker counts carrots for the current run and keeps the best
// score in step with the store.
type ScoreTracker struct {
	store ScoreStore
	sound audio.Player

	collected int
	highest   int

	carrotsText string
	highestText string
}

// NewScoreTracker starts a tracker at zero with the store's best score.
func NewScoreTracker(store ScoreStore, sound audio.Player) *ScoreTracker {
	t := &ScoreTracker{store: store, sound: sound, highest: store.Best()}
	t.refreshTexts()
	return t
}

// Collect handles a bunny touching carrot c. Carrots that are already
// inactive are ignored.
func (t *ScoreTracker) Collect(c *Collectible) {
	if c == nil || !c.Active() {
		return
	}
	c.Deactivate()
	t.sound.Play(audio.SoundPickup)

	t.Sync()
	t.collected++
	if t.collected > t.highest {
		t.highest = t.collected
		t.store.Save(t.highest)
	}
	t.refreshTexts()
}

// Sync raises the best score to the store's value, which other games
// sharing the store may have pushed past ours.
func (t *ScoreTracker) Sync() {
	if best := t.store.Best(); best > t.highest {
		t.highest = best
		t.refreshTexts()
	}
}

// Reset zeroes the run count. The best score is kept.
func (t *ScoreTracker) Reset() {
	t.collected = 0
	t.refreshTexts()
	t.Sync()
}

// Collected returns the carrots picked up this run.
func (t *ScoreTracker) Collected() int { return t.collected }

// Highest returns the best score seen by this process or the store.
func (t *ScoreTracker) Highest() int { return t.highest }

// CarrotsText returns the run counter as displayed.
func (t *ScoreTracker) CarrotsText() string { return t.carrotsText }

// HighestText returns the best score as displayed.
func (t *ScoreTracker) HighestText() string { return t.highestText }

func (t *ScoreTracker) refreshTexts() {
	t.carrotsText = fmt.Sprintf("Carrots: %d", t.collected)
	t.highestText = fmt.Sprintf("Highest: %d", t.highest)
}
