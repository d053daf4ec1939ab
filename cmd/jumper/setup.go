package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/audio"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// newLogger builds the process logger. Without --log-file it writes to
// fallback, which is io.Discard for commands that own the terminal.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		path, err := storage.ExpandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "jumper",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("invalid --log-level %q", flagLogLevel)
	}
	logger.SetLevel(level)
	return logger, closeFn, nil
}

// openBest opens the score database and starts the background writer.
// If the database cannot be opened the best score lives in memory only.
// The returned stop func flushes pending writes and closes the database.
func openBest(logger *log.Logger) (*storage.BestScore, func()) {
	var kv storage.KV
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		kv = storage.NewMemoryKV()
	} else {
		kv = store
	}

	best := storage.NewBestScore(kv, logger)
	ctx, cancel := context.WithCancel(context.Background())
	best.Load(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = best.Run(ctx)
	}()

	return best, func() {
		cancel()
		<-done
		if store != nil {
			if err := store.Close(); err != nil {
				logger.Warn("could not close scores database", "error", err)
			}
		}
	}
}

// openAudio starts the speaker, falling back to silence.
func openAudio(mute bool, volume float64, logger *log.Logger) (audio.Player, func()) {
	if mute {
		return audio.Nop{}, func() {}
	}
	sm := audio.NewSoundManager(volume, logger)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio disabled", "error", err)
		return audio.Nop{}, func() {}
	}
	return sm, sm.Cleanup
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
