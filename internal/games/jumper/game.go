package jumper

import (
	"math/rand"

	"github.com/vovakirdan/tui-jumper/internal/audio"
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/physics"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

// Status is the run state.
type Status int

const (
	StatusPlaying Status = iota
	StatusGameOver
)

func (s Status) String() string {
	if s == StatusGameOver {
		return "game over"
	}
	return "playing"
}

// Game owns the scene and runs the frame loop. Each Step is one frame:
// physics (with carrot pickups) first, then the scroller, the bunny, the
// camera and finally the lose check.
type Game struct {
	cfg     config.JumperConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	store    ScoreStore
	sound    audio.Player
	registry *registry.Registry

	world        *physics.World
	platforms    *Pool[*Platform]
	clouds       *Pool[*Cloud]
	collectibles *Pool[*Collectible]
	player       *Player

	spawner    *CollectibleSpawner
	scroller   *WorldScroller
	controller *PlayerController
	score      *ScoreTracker
	camera     Camera

	status    Status
	paused    bool
	tickCount int
	runs      int
}

// Option customizes a Game.
type Option func(*Game)

// WithConfig replaces the default tuning.
func WithConfig(cfg config.JumperConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithStore sets where the best score is kept. Without it the best score
// lives only as long as the Game.
func WithStore(store ScoreStore) Option {
	return func(g *Game) { g.store = store }
}

// WithAudio sets the sound output. The default is silent.
func WithAudio(p audio.Player) Option {
	return func(g *Game) { g.sound = p }
}

// WithRegistry sets the registry the final score is published to.
func WithRegistry(r *registry.Registry) Option {
	return func(g *Game) { g.registry = r }
}

// New creates a jumper game. Call Reset before stepping it.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:      config.DefaultJumperConfig(),
		store:    &sessionStore{},
		sound:    audio.Nop{},
		registry: registry.New(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "jumper"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bunny Jumper"
}

// Reset seeds the random source from cfg and starts a fresh run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.runs = 0
	g.start()
}

// start builds a new scene and begins playing. The random source carries
// over so consecutive runs get different layouts.
func (g *Game) start() {
	g.buildScene()
	g.status = StatusPlaying
	g.paused = false
	g.tickCount = 0
	g.runs++
	g.sound.PlayMusic()
}

func (g *Game) buildScene() {
	cfg := g.cfg
	g.world = physics.NewWorld(cfg.World.Gravity)

	g.clouds = NewPool[*Cloud](nil)
	for i := 0; i < cfg.Clouds.Count; i++ {
		x := float64(between(g.rng, 0, int(cfg.World.Width)))
		g.clouds.Add(NewCloud(x, cfg.Clouds.Spacing*float64(i), cfg.Clouds.Width, cfg.Clouds.Height))
	}

	g.platforms = NewPool[*Platform](nil)
	base := NewPlatform(cfg.Platforms.BaseX, cfg.Platforms.BaseY, cfg.Platforms.Width, cfg.Platforms.Height)
	g.platforms.Add(base)
	g.world.Add(base.Body())
	for i := 0; i < cfg.Platforms.Count; i++ {
		x := float64(between(g.rng, cfg.Platforms.InitialMinX, cfg.Platforms.InitialMaxX))
		p := NewPlatform(x, cfg.Platforms.Spacing*float64(i), cfg.Platforms.Width, cfg.Platforms.Height)
		g.platforms.Add(p)
		g.world.Add(p.Body())
	}

	g.player = NewPlayer(cfg.Player.StartX, cfg.Player.StartY, cfg.Player.Width, cfg.Player.Height)
	g.world.Add(g.player.Body())

	world := g.world
	g.collectibles = NewPool(func() *Collectible {
		c := NewCollectible(cfg.Collectibles.Width, cfg.Collectibles.Height)
		world.Add(c.Body())
		return c
	})

	g.world.Collide(GroupPlayer, GroupPlatform)
	g.world.Collide(GroupCollectible, GroupPlatform)
	g.world.Overlap(GroupPlayer, GroupCollectible)

	g.spawner = NewCollectibleSpawner(g.collectibles)
	g.scroller = NewWorldScroller(g.platforms, g.clouds, g.collectibles, g.spawner, g.rng, cfg)
	g.controller = NewPlayerController(g.player, g.sound, cfg)
	if g.score == nil {
		g.score = NewScoreTracker(g.store, g.sound)
	} else {
		g.score.Reset()
	}

	g.camera = Camera{
		Width:     cfg.World.Width,
		Height:    cfg.World.Height,
		DeadzoneW: cfg.Camera.DeadzoneWidth,
		DeadzoneH: cfg.Camera.DeadzoneHeight,
	}
	g.camera.CenterOn(cfg.World.Width/2, cfg.Player.StartY)
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.status == StatusGameOver {
		if in.Has(core.ActionRestart) {
			g.start()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		if g.paused {
			g.world.Pause()
		} else {
			g.world.Resume()
		}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.score.Sync()
	g.world.Recenter(g.camera.ScrollY + g.camera.Height/2)
	for _, o := range g.world.Step(g.runtime.Delta()) {
		g.score.Collect(g.collectibleFor(o.B))
	}

	g.scroller.Tick(g.camera.ScrollY)
	g.controller.Tick(in)

	x, y := g.player.Position()
	g.camera.Follow(x, y)

	if lowest := g.LowestPlatform(); lowest != nil {
		_, ly := lowest.Position()
		if y > ly+g.cfg.Rules.LoseMargin {
			g.gameOver()
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) collectibleFor(b *physics.Body) *Collectible {
	for _, c := range g.collectibles.Items() {
		if c.Body() == b {
			return c
		}
	}
	return nil
}

// LowestPlatform returns the platform furthest down the world. On equal
// heights the first one in the pool wins.
func (g *Game) LowestPlatform() *Platform {
	var lowest *Platform
	for _, p := range g.platforms.Items() {
		if lowest == nil {
			lowest = p
			continue
		}
		if _, y := p.Position(); y > lowest.body.Y {
			lowest = p
		}
	}
	return lowest
}

func (g *Game) gameOver() {
	g.status = StatusGameOver
	g.world.Pause()
	g.controller.Hurt()
	g.sound.StopMusic()
	g.registry.Set(registry.KeyFinalScore, g.score.CarrotsText())
}

// Render draws the current frame to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderScreen(dst, g.Snapshot())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score.Collected(),
		HighScore: g.score.Highest(),
		GameOver:  g.status == StatusGameOver,
		Paused:    g.paused,
	}
}

// Status returns whether the run is still going.
func (g *Game) Status() Status {
	return g.status
}

// Runs returns how many runs have started since the last Reset.
func (g *Game) Runs() int {
	return g.runs
}
