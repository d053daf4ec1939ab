package jumper

import (
	"math/rand"

	"github.com/vovakirdan/tui-jumper/internal/audio"
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// recordingAudio remembers what the game asked to play.
type recordingAudio struct {
	played      []audio.Sound
	musicStarts int
	musicStops  int
}

func (r *recordingAudio) Play(s audio.Sound) { r.played = append(r.played, s) }
func (r *recordingAudio) PlayMusic()         { r.musicStarts++ }
func (r *recordingAudio) StopMusic()         { r.musicStops++ }

func (r *recordingAudio) count(s audio.Sound) int {
	n := 0
	for _, p := range r.played {
		if p == s {
			n++
		}
	}
	return n
}

// fakeStore is an in-memory ScoreStore that records saves.
type fakeStore struct {
	best  int
	saved []int
}

func (f *fakeStore) Best() int { return f.best }

func (f *fakeStore) Save(score int) {
	f.saved = append(f.saved, score)
	if score > f.best {
		f.best = score
	}
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// testScene is a scroller wired to empty pools.
type testScene struct {
	cfg          config.JumperConfig
	platforms    *Pool[*Platform]
	clouds       *Pool[*Cloud]
	collectibles *Pool[*Collectible]
	spawner      *CollectibleSpawner
	scroller     *WorldScroller
}

func newTestScene(seed int64) *testScene {
	cfg := config.DefaultJumperConfig()
	s := &testScene{
		cfg:       cfg,
		platforms: NewPool[*Platform](nil),
		clouds:    NewPool[*Cloud](nil),
		collectibles: NewPool(func() *Collectible {
			return NewCollectible(cfg.Collectibles.Width, cfg.Collectibles.Height)
		}),
	}
	s.spawner = NewCollectibleSpawner(s.collectibles)
	s.scroller = NewWorldScroller(s.platforms, s.clouds, s.collectibles, s.spawner,
		rand.New(rand.NewSource(seed)), cfg)
	return s
}

func (s *testScene) addPlatform(x, y float64) *Platform {
	p := NewPlatform(x, y, s.cfg.Platforms.Width, s.cfg.Platforms.Height)
	s.platforms.Add(p)
	return p
}

func (s *testScene) addCloud(x, y float64) *Cloud {
	c := NewCloud(x, y, s.cfg.Clouds.Width, s.cfg.Clouds.Height)
	s.clouds.Add(c)
	return c
}
