package jumper

import "testing"

func TestPoolReusesInactive(t *testing.T) {
	created := 0
	pool := NewPool(func() *Collectible {
		created++
		return NewCollectible(10, 10)
	})

	a, _ := pool.Get()
	a.Activate(0, 0)
	b, _ := pool.Get()
	b.Activate(0, 0)

	if created != 2 || pool.Len() != 2 {
		t.Fatalf("created %d, Len() %d; expected 2 each", created, pool.Len())
	}

	a.Deactivate()
	c, ok := pool.Get()
	if !ok || c != a {
		t.Error("Get() should return the deactivated entry")
	}
	if created != 2 {
		t.Errorf("pool grew to %d while an inactive entry existed", created)
	}
	if pool.CountActive() != 1 {
		t.Errorf("CountActive() = %d, expected 1", pool.CountActive())
	}
}

func TestFixedPoolDoesNotGrow(t *testing.T) {
	pool := NewPool[*Platform](nil)
	pool.Add(NewPlatform(0, 0, 10, 10))

	if _, ok := pool.Get(); ok {
		t.Error("fixed pool with only active entries should not hand out an entry")
	}
	if pool.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", pool.Len())
	}
}
