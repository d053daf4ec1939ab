package jumper

// Pool is a recyclable collection of entities. Entries are toggled active
// and inactive rather than freed.
type Pool[T Entity] struct {
	items  []T
	create func() T
}

// NewPool creates a pool. create builds a new entry when Get finds no
// inactive one; a nil create makes the pool fixed-size.
func NewPool[T Entity](create func() T) *Pool[T] {
	return &Pool[T]{create: create}
}

// Add appends an entry.
func (p *Pool[T]) Add(item T) {
	p.items = append(p.items, item)
}

// Get returns the first inactive entry, growing the pool if there is none.
// The second result is false when the pool is full and cannot grow.
func (p *Pool[T]) Get() (T, bool) {
	for _, item := range p.items {
		if !item.Active() {
			return item, true
		}
	}
	if p.create == nil {
		var zero T
		return zero, false
	}
	item := p.create()
	p.items = append(p.items, item)
	return item, true
}

// Items returns every entry in insertion order.
func (p *Pool[T]) Items() []T {
	return p.items
}

// Len returns the number of entries, active or not.
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// CountActive returns the number of active entries.
func (p *Pool[T]) CountActive() int {
	n := 0
	for _, item := range p.items {
		if item.Active() {
			n++
		}
	}
	return n
}
