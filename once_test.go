package optlock

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/zeebo/assert"
)

func TestOnceSetGet(t *testing.T) {
	var o Once[string]

	_, ok := o.Get()
	assert.That(t, !ok)

	assert.That(t, o.Set("first"))
	assert.That(t, !o.Set("second"))

	v, ok := o.Get()
	assert.That(t, ok)
	assert.Equal(t, v, "first")
}

func TestOnceGetOrInit(t *testing.T) {
	var o Once[int]
	assert.Equal(t, o.GetOrInit(func() int { return 10 }), 10)
	assert.Equal(t, o.GetOrInit(func() int { return 11 }), 10)
}

func TestOnceSetRace(t *testing.T) {
	var o Once[int]
	np := runtime.GOMAXPROCS(-1)

	var wins atomic.Int32
	begin := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(np)
	for i := 0; i < np; i++ {
		i := i
		go func() {
			defer wg.Done()
			<-begin
			if o.Set(i) {
				wins.Add(1)
			}
		}()
	}
	close(begin)
	wg.Wait()

	assert.Equal(t, wins.Load(), int32(1))
	v, ok := o.Get()
	assert.That(t, ok)
	assert.That(t, v >= 0 && v < np)
}

func TestOnceGetOrInitConcurrent(t *testing.T) {
	var o Once[int]
	np := runtime.GOMAXPROCS(-1)

	var inits atomic.Int32
	results := make(chan int, np)
	var wg sync.WaitGroup
	wg.Add(np)
	for i := 0; i < np; i++ {
		i := i
		go func() {
			defer wg.Done()
			results <- o.GetOrInit(func() int {
				inits.Add(1)
				return i
			})
		}()
	}
	wg.Wait()
	close(results)

	assert.Equal(t, inits.Load(), int32(1))
	first, ok := o.Get()
	assert.That(t, ok)
	for v := range results {
		assert.Equal(t, v, first)
	}
}
