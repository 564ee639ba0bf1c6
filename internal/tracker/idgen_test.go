package tracker

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDGenerator_MonotonicFromSeed(t *testing.T) {
	g := NewIDGeneratorSeeded(1000)
	assert.Equal(t, "gupio_1000", g.Next())
	assert.Equal(t, "gupio_1001", g.Next())
	assert.Equal(t, "gupio_1002", g.Next())
}

func TestIDGenerator_UniqueUnderConcurrency(t *testing.T) {
	g := NewIDGenerator()
	const n = 200

	var mu sync.Mutex
	seen := make(map[string]bool, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := g.Next()
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, n)
}
