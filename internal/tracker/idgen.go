package tracker

import (
	"fmt"
	"sync"
	"time"
)

// IDGenerator hands out session-unique task ids: a counter seeded once from
// the wall clock in milliseconds, formatted as gupio_<n>. After seeding only
// the counter advances, so clock changes between calls can't collide.
// Uniqueness across process restarts rests on the timestamp seed alone.
type IDGenerator struct {
	mu   sync.Mutex
	next int64
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{next: time.Now().UnixMilli()}
}

// NewIDGeneratorSeeded pins the seed, for tests.
func NewIDGeneratorSeeded(seed int64) *IDGenerator {
	return &IDGenerator{next: seed}
}

func (g *IDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.next
	g.next++
	return fmt.Sprintf("gupio_%d", id)
}
