package domain

import (
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"
)

// IDGenerator issues unique session ids. Two ids requested within the same
// millisecond are still distinct: a per-millisecond counter is combined with
// the timestamp and a random suffix.
type IDGenerator struct {
	mu         sync.Mutex
	lastMillis int64
	counter    int
	rand       *rand.Rand
	now        func() time.Time
}

// NewIDGenerator creates a generator seeded from the wall clock.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
		now:  time.Now,
	}
}

// NewIDGeneratorAt creates a generator with an injected clock and seed,
// for deterministic tests.
func NewIDGeneratorAt(now func() time.Time, seed int64) *IDGenerator {
	return &IDGenerator{
		rand: rand.New(rand.NewSource(seed)),
		now:  now,
	}
}

// Next returns a new id of the form "<millis>-<counter>-<suffix>".
func (g *IDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	millis := g.now().UnixMilli()
	if millis == g.lastMillis {
		g.counter++
	} else {
		g.counter = 0
		g.lastMillis = millis
	}

	suffix := strconv.FormatInt(g.rand.Int63n(1<<47), 36)
	return fmt.Sprintf("%d-%d-%s", millis, g.counter, suffix)
}
