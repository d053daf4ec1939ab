package storage

import (
	"context"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// KeyHighestScore is the key the best score is persisted under.
const KeyHighestScore = "highestScore"

// flushTimeout bounds the final write performed when Run is cancelled.
const flushTimeout = 2 * time.Second

// BestScore is the durable best-score scalar. It is safe for concurrent use;
// Save never blocks the caller and the value in storage never decreases.
type BestScore struct {
	kv     KV
	logger *log.Logger

	mu   sync.Mutex
	best int // Largest value loaded or saved

	pending chan int
}

// NewBestScore wraps kv. A nil logger discards log output.
func NewBestScore(kv KV, logger *log.Logger) *BestScore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &BestScore{
		kv:      kv,
		logger:  logger,
		pending: make(chan int, 1),
	}
}

// Load reads the persisted value. A missing or unparseable value is 0.
func (b *BestScore) Load(ctx context.Context) int {
	raw, ok, err := b.kv.Get(ctx, KeyHighestScore)
	if err != nil {
		b.logger.Warn("could not read best score", "error", err)
		return b.Best()
	}

	score := 0
	if ok {
		if parsed, parseErr := strconv.Atoi(raw); parseErr == nil && parsed > 0 {
			score = parsed
		} else if parseErr != nil {
			b.logger.Warn("ignoring malformed best score", "value", raw)
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if score > b.best {
		b.best = score
	}
	return b.best
}

// Best returns the largest value loaded or saved so far.
func (b *BestScore) Best() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.best
}

// Reset forgets the persisted value. Scores queued before the call may
// still be written by Run.
func (b *BestScore) Reset(ctx context.Context) error {
	if err := b.kv.Delete(ctx, KeyHighestScore); err != nil {
		return err
	}
	b.mu.Lock()
	b.best = 0
	b.mu.Unlock()
	b.logger.Info("best score reset")
	return nil
}

// Save queues score for writing and returns immediately. Pending values are
// coalesced; only the largest reaches storage.
func (b *BestScore) Save(score int) {
	b.mu.Lock()
	if score > b.best {
		b.best = score
	}
	b.mu.Unlock()

	for {
		select {
		case b.pending <- score:
			return
		default:
		}
		select {
		case queued := <-b.pending:
			if queued > score {
				score = queued
			}
		default:
		}
	}
}

// Run writes queued values until ctx is cancelled, then flushes whatever is
// still pending and returns.
func (b *BestScore) Run(ctx context.Context) error {
	for {
		select {
		case score := <-b.pending:
			b.write(ctx, score)
		case <-ctx.Done():
			b.flush()
			return nil
		}
	}
}

func (b *BestScore) flush() {
	select {
	case score := <-b.pending:
		ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		defer cancel()
		b.write(ctx, score)
	default:
	}
}

// write stores score unless storage already holds a value at least as large.
func (b *BestScore) write(ctx context.Context, score int) {
	raw, ok, err := b.kv.Get(ctx, KeyHighestScore)
	if err != nil {
		b.logger.Error("could not read best score before write", "error", err)
		return
	}
	if ok {
		if current, parseErr := strconv.Atoi(raw); parseErr == nil && current >= score {
			return
		}
	}

	if err := b.kv.Put(ctx, KeyHighestScore, strconv.Itoa(score)); err != nil {
		b.logger.Error("could not persist best score", "score", score, "error", err)
		return
	}
	b.logger.Debug("best score persisted", "score", score)
}
