package tetris

import "github.com/kamstrup/intmap"

// Source is the random source pieces are drawn from.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// RandomPiece draws a shape uniformly and returns it at its spawn location.
func RandomPiece(rng Source) Piece {
	return NewPiece(Shape(rng.Intn(NumShapes)))
}

// Stats counts the pieces drawn per shape.
type Stats struct {
	counts *intmap.Map[Shape, int]
	total  int
}

func newStats() *Stats {
	return &Stats{counts: intmap.New[Shape, int](NumShapes)}
}

func (s *Stats) record(shape Shape) {
	n, _ := s.counts.Get(shape)
	s.counts.Put(shape, n+1)
	s.total++
}

// Count returns how many pieces of the shape have been drawn.
func (s *Stats) Count(shape Shape) int {
	if s == nil {
		return 0
	}
	n, _ := s.counts.Get(shape)
	return n
}

// Total returns how many pieces have been drawn.
func (s *Stats) Total() int {
	if s == nil {
		return 0
	}
	return s.total
}

func (s *Stats) clone() *Stats {
	c := newStats()
	for _, shape := range Shapes() {
		if n, ok := s.counts.Get(shape); ok {
			c.counts.Put(shape, n)
		}
	}
	c.total = s.total
	return c
}

// Queue holds the piece in play and the one after it.
type Queue struct {
	current Piece
	next    Piece
	spawned bool
	stats   *Stats
}

// Spawn draws the current and next pieces. It only has an effect the first
// time it is called.
func (q *Queue) Spawn(rng Source) {
	if q.spawned {
		return
	}
	if q.stats == nil {
		q.stats = newStats()
	}
	q.current = q.draw(rng)
	q.next = q.draw(rng)
	q.spawned = true
}

// Advance promotes the next piece to current and draws a new next piece.
// The outcome is SpawnBlocked when the promoted piece overlaps the stack.
func (q *Queue) Advance(rng Source, g *Grid) SpawnOutcome {
	q.mustBeSpawned()
	q.current = q.next
	q.next = q.draw(rng)

	for _, c := range q.current.Cells() {
		if g.IsOccupied(c) {
			return SpawnBlocked
		}
	}
	return SpawnOK
}

// Spawned reports whether Spawn has run.
func (q *Queue) Spawned() bool {
	return q.spawned
}

// Current returns the piece in play.
func (q *Queue) Current() Piece {
	q.mustBeSpawned()
	return q.current
}

// Next returns the piece that follows the current one.
func (q *Queue) Next() Piece {
	q.mustBeSpawned()
	return q.next
}

// Stats returns the per-shape draw counters.
func (q *Queue) Stats() *Stats {
	return q.stats
}

func (q *Queue) draw(rng Source) Piece {
	p := RandomPiece(rng)
	q.stats.record(p.Shape)
	return p
}

func (q *Queue) mustBeSpawned() {
	if !q.spawned {
		panic("tetris: piece queue used before spawn")
	}
}
