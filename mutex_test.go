package optlock

import (
	"sync"
	"testing"

	"github.com/zeebo/assert"
)

func TestMutexTryLock(t *testing.T) {
	m := NewMutex(5)

	g, err := m.TryLock()
	assert.NoError(t, err)

	_, err = m.TryLock()
	assert.Equal(t, err, ErrUnavailable)

	assert.Equal(t, g.Get(), 5)
	assert.Equal(t, g.Set(6), 5)
	g.Unlock()

	g, err = m.TryLock()
	assert.NoError(t, err)
	assert.Equal(t, g.Get(), 6)
	g.Unlock()
}

func TestMutexPoison(t *testing.T) {
	m := NewMutex("payload")
	assert.That(t, !m.Poisoned())

	g, err := m.TryLock()
	assert.NoError(t, err)
	assert.Equal(t, g.Extract(), "payload")

	assert.That(t, m.Poisoned())
	_, err = m.TryLock()
	assert.Equal(t, err, ErrPoisoned)
	_, err = m.Lock()
	assert.Equal(t, err, ErrPoisoned)
}

func TestMutexLockCounter(t *testing.T) {
	const workers = 100
	m := NewMutex(0)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			g, err := m.Lock()
			if err != nil {
				t.Error(err)
				return
			}
			g.Set(g.Get() + 1)
			g.Unlock()
		}()
	}
	wg.Wait()

	g, err := m.Lock()
	assert.NoError(t, err)
	assert.Equal(t, g.Get(), workers)
	g.Unlock()
}
