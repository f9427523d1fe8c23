package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutexSerializesPerKey(t *testing.T) {
	km := NewKeyedMutex()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := km.WithLock(42, func() error {
				counter++
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestKeyedMutexKeysAreIndependent(t *testing.T) {
	km := NewKeyedMutex()

	km.Lock(1)
	defer km.Unlock(1)

	done := make(chan struct{})
	go func() {
		km.Lock(2)
		km.Unlock(2)
		close(done)
	}()

	// Key 2 must not block behind key 1
	<-done
}
