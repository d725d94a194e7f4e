package workers

import (
	"sync"
	"testing"

	"github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPool_Overload 池满时 Submit 返回 ants.ErrPoolOverload
func TestPool_Overload(t *testing.T) {
	p, err := NewPool(1)
	require.NoError(t, err)
	defer p.Release()

	release := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, p.Submit(func() {
		close(started)
		<-release
	}, nil))
	<-started

	err = p.Submit(func() {}, nil)
	assert.ErrorIs(t, err, ants.ErrPoolOverload)
	assert.EqualValues(t, 1, p.Running())
	close(release)
}

// TestPool_Recover panic 被捕获并交给 recoverFun
func TestPool_Recover(t *testing.T) {
	p, err := NewPool(2)
	require.NoError(t, err)
	defer p.Release()

	var wg sync.WaitGroup
	wg.Add(1)
	var got interface{}
	require.NoError(t, p.Submit(func() {
		panic("boom")
	}, func(err interface{}) {
		got = err
		wg.Done()
	}))
	wg.Wait()
	assert.Equal(t, "boom", got)
	assert.EqualValues(t, 1, p.PanicCount())
}

func TestTry(t *testing.T) {
	var got interface{}
	Try(func() { panic("x") }, func(err interface{}) { got = err })
	assert.Equal(t, "x", got)

	assert.NotPanics(t, func() { Try(func() { panic("y") }, nil) })
}
