package jumper

import (
	"math/rand"

	"github.com/vovakirdan/tui-jumper/internal/config"
)

// WorldScroller fakes an endless climb by moving objects that fell off the
// bottom of the view to just above its top.
type WorldScroller struct {
	platforms    *Pool[*Platform]
	clouds       *Pool[*Cloud]
	collectibles *Pool[*Collectible]
	spawner      *CollectibleSpawner
	rng          *rand.Rand

	platformCfg config.PlatformConfig
	cloudCfg    config.CloudConfig
}

// NewWorldScroller wires a scroller to the scene's pools.
func NewWorldScroller(
	platforms *Pool[*Platform],
	clouds *Pool[*Cloud],
	collectibles *Pool[*Collectible],
	spawner *CollectibleSpawner,
	rng *rand.Rand,
	cfg config.JumperConfig,
) *WorldScroller {
	return &WorldScroller{
		platforms:    platforms,
		clouds:       clouds,
		collectibles: collectibles,
		spawner:      spawner,
		rng:          rng,
		platformCfg:  cfg.Platforms,
		cloudCfg:     cfg.Clouds,
	}
}

// Tick recycles everything below the view whose top is at scrollY and
// returns the number of platforms recycled.
func (s *WorldScroller) Tick(scrollY float64) int {
	recycled := 0
	for _, p := range s.platforms.Items() {
		if s.RecyclePlatform(p, scrollY) {
			recycled++
		}
	}
	for _, c := range s.clouds.Items() {
		s.RecycleCloud(c, scrollY)
	}

	// Carrots left behind go back to the pool.
	limit := scrollY + s.platformCfg.RecycleThreshold
	for _, c := range s.collectibles.Items() {
		if _, y := c.Position(); c.Active() && y >= limit {
			c.Deactivate()
		}
	}
	return recycled
}

// RecyclePlatform moves p above the view if it has scrolled past the
// threshold, refreshes its collision bounds and spawns a carrot on it.
// It reports whether p moved.
func (s *WorldScroller) RecyclePlatform(p *Platform, scrollY float64) bool {
	_, y := p.Position()
	if y < scrollY+s.platformCfg.RecycleThreshold {
		return false
	}

	newY := scrollY - float64(between(s.rng, s.platformCfg.MinGap, s.platformCfg.MaxGap))
	newX := float64(between(s.rng, s.platformCfg.MinX, s.platformCfg.MaxX))
	p.SetPosition(newX, newY)
	p.Body().Refresh()

	s.spawner.SpawnAbove(p)
	return true
}

// RecycleCloud moves c above the view once it is past the cloud threshold.
// Clouds keep their x.
func (s *WorldScroller) RecycleCloud(c *Cloud, scrollY float64) bool {
	x, y := c.Position()
	if y < scrollY+s.cloudCfg.RecycleThreshold {
		return false
	}
	c.SetPosition(x, scrollY-float64(between(s.rng, s.cloudCfg.MinGap, s.cloudCfg.MaxGap)))
	return true
}

// between returns a uniform integer in [min, max].
func between(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}
