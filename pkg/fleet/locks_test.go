package fleet

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngineLocks_SerializesPerEngine(t *testing.T) {
	locks := NewEngineLocks()

	var inside atomic.Int32
	var maxInside atomic.Int32
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock(1)
			defer unlock()

			n := inside.Add(1)
			if n > maxInside.Load() {
				maxInside.Store(n)
			}
			inside.Add(-1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside.Load())
	assert.Zero(t, locks.size())
}

func TestEngineLocks_IndependentEngines(t *testing.T) {
	locks := NewEngineLocks()

	unlock1 := locks.Lock(1)
	done := make(chan struct{})
	go func() {
		unlock2 := locks.Lock(2)
		unlock2()
		close(done)
	}()
	<-done

	assert.Equal(t, 1, locks.size())
	unlock1()
	assert.Zero(t, locks.size())
}
