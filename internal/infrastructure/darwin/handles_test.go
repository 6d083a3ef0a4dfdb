package darwin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestHandleTable_TakeOnce(t *testing.T) {
	table := &handleTable{fns: make(map[uintptr]func())}

	ran := 0
	h := table.put(func() { ran++ })
	assert.NotZero(t, h)

	fn := table.take(h)
	require.NotNil(t, fn)
	fn()
	assert.Equal(t, 1, ran)

	assert.Nil(t, table.take(h))
	assert.Nil(t, table.take(h+100))
}

func TestHandleTable_ConcurrentPut(t *testing.T) {
	table := &handleTable{fns: make(map[uintptr]func())}

	var g errgroup.Group
	for i := 0; i < 100; i++ {
		g.Go(func() error {
			table.put(func() {})
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Len(t, table.fns, 100)
	for h := uintptr(1); h <= 100; h++ {
		assert.NotNil(t, table.take(h))
	}
	assert.Empty(t, table.fns)
}
