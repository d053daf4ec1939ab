package jumper

// CollectibleSpawner puts a carrot on top of a platform.
type CollectibleSpawner struct {
	pool *Pool[*Collectible]
}

// NewCollectibleSpawner creates a spawner drawing from pool.
func NewCollectibleSpawner(pool *Pool[*Collectible]) *CollectibleSpawner {
	return &CollectibleSpawner{pool: pool}
}

// SpawnAbove activates one carrot centred at the platform's x, one platform
// height above its centre.
func (s *CollectibleSpawner) SpawnAbove(p *Platform) *Collectible {
	c, ok := s.pool.Get()
	if !ok {
		return nil
	}
	x, y := p.Position()
	c.Activate(x, y-p.Height())
	return c
}
