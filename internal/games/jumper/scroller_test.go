package jumper

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-jumper/internal/physics"
)

func TestRecyclePlatformMovesAboveView(t *testing.T) {
	s := newTestScene(1)
	p := s.addPlatform(200, 700)

	scrollY := 0.0
	if !s.scroller.RecyclePlatform(p, scrollY) {
		t.Fatal("platform past the threshold should be recycled")
	}

	x, y := p.Position()
	if y >= scrollY {
		t.Errorf("recycled y = %v, expected above scroll offset %v", y, scrollY)
	}
	if y > scrollY-80 || y < scrollY-120 {
		t.Errorf("recycled y = %v, expected within [%v, %v]", y, scrollY-120, scrollY-80)
	}
	if x < 40 || x > 440 {
		t.Errorf("recycled x = %v, expected within [40, 440]", x)
	}
	if top := p.Body().Top(); top != y-p.Height()/2 {
		t.Errorf("collision top = %v, expected bounds refreshed to %v", top, y-p.Height()/2)
	}
}

func TestRecycleSpawnsOneCollectibleAbovePlatform(t *testing.T) {
	s := newTestScene(2)
	p := s.addPlatform(200, 650)

	s.scroller.Tick(0)

	if got := s.collectibles.CountActive(); got != 1 {
		t.Fatalf("active collectibles = %d, expected 1", got)
	}
	c := s.collectibles.Items()[0]
	px, py := p.Position()
	cx, cy := c.Position()
	if cx != px || cy != py-p.Height() {
		t.Errorf("collectible at (%v, %v), expected (%v, %v)", cx, cy, px, py-p.Height())
	}
	if !c.Visible() || !c.Body().Enable {
		t.Error("spawned collectible should be visible with collision enabled")
	}
	w, h := c.Size()
	if w != s.cfg.Collectibles.Width || h != s.cfg.Collectibles.Height {
		t.Errorf("collectible size = %vx%v, expected sprite size", w, h)
	}
}

func TestRecycleIsIdempotent(t *testing.T) {
	s := newTestScene(3)
	p := s.addPlatform(200, 700)

	s.scroller.Tick(0)
	x, y := p.Position()

	for i := 0; i < 5; i++ {
		if n := s.scroller.Tick(0); n != 0 {
			t.Fatalf("tick %d recycled %d platforms, expected none", i, n)
		}
	}
	if nx, ny := p.Position(); nx != x || ny != y {
		t.Errorf("platform moved from (%v, %v) to (%v, %v)", x, y, nx, ny)
	}
	if got := s.collectibles.CountActive(); got != 1 {
		t.Errorf("active collectibles = %d, expected still 1", got)
	}
}

func TestRecycleThresholds(t *testing.T) {
	tests := []struct {
		name    string
		y       float64
		scrollY float64
		want    bool
	}{
		{"just above threshold", 639, 0, false},
		{"on threshold", 640, 0, true},
		{"scrolled view", 700, 100, false},
		{"far below", 5000, 100, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestScene(4)
			p := s.addPlatform(100, tc.y)
			if got := s.scroller.RecyclePlatform(p, tc.scrollY); got != tc.want {
				t.Errorf("RecyclePlatform() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestRecycleCloud(t *testing.T) {
	s := newTestScene(5)
	c := s.addCloud(123, 800)
	stay := s.addCloud(50, 799)

	s.scroller.Tick(0)

	x, y := c.Position()
	if x != 123 {
		t.Errorf("cloud x = %v, expected unchanged 123", x)
	}
	if y > -20 || y < -60 {
		t.Errorf("cloud y = %v, expected within [-60, -20]", y)
	}
	if _, y := stay.Position(); y != 799 {
		t.Errorf("cloud above threshold moved to y = %v", y)
	}
	if s.collectibles.Len() != 0 {
		t.Error("clouds must not spawn collectibles")
	}
}

func TestRecycledPositionsAlwaysAboveView(t *testing.T) {
	s := newTestScene(6)
	for i := 0; i < 6; i++ {
		s.addPlatform(100, float64(i)*150)
	}
	rng := rand.New(rand.NewSource(99))

	scrollY := 0.0
	recycled := 0
	for frame := 0; frame < 500; frame++ {
		scrollY -= float64(rng.Intn(40))
		before := make([]float64, s.platforms.Len())
		for i, p := range s.platforms.Items() {
			_, before[i] = p.Position()
		}

		recycled += s.scroller.Tick(scrollY)

		for i, p := range s.platforms.Items() {
			if _, y := p.Position(); y != before[i] && y >= scrollY {
				t.Fatalf("frame %d: platform %d recycled to %v, not above %v", frame, i, y, scrollY)
			}
		}
	}

	if recycled == 0 {
		t.Fatal("expected some platforms to be recycled")
	}
	if s.collectibles.Len() > recycled {
		t.Errorf("pool grew to %d for %d recycles", s.collectibles.Len(), recycled)
	}
}

func TestScrollerReturnsLeftBehindCollectibles(t *testing.T) {
	s := newTestScene(7)
	c, _ := s.collectibles.Get()
	c.Activate(100, 700)

	s.scroller.Tick(0)

	if c.Active() || c.Visible() || c.Body().Enable {
		t.Error("collectible below the view should be deactivated")
	}
	if again, _ := s.collectibles.Get(); again != c {
		t.Error("deactivated collectible should be reused by the pool")
	}
}

func TestSpawnedCollectibleRestsOnItsPlatform(t *testing.T) {
	s := newTestScene(4)
	world := physics.NewWorld(s.cfg.World.Gravity)
	world.Collide(GroupCollectible, GroupPlatform)

	p := s.addPlatform(100, 100)
	world.Add(p.Body())
	c := s.spawner.SpawnAbove(p)
	world.Add(c.Body())

	for range 60 {
		world.Step(1.0 / 60.0)
	}

	if !c.Body().Touching.Down {
		_, y := c.Position()
		t.Fatalf("collectible fell through its platform, y=%v", y)
	}
	if bottom, top := c.Body().Bottom(), p.Body().Top(); math.Abs(bottom-top) > 1e-9 {
		t.Errorf("collectible bottom = %v, expected to rest on top %v", bottom, top)
	}
}
