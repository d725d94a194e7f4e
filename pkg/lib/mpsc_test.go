package lib

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMpsc_FIFO(t *testing.T) {
	q := NewMpsc[int]()
	assert.True(t, q.Empty())
	for i := 0; i < 100; i++ {
		q.Push(i)
	}
	for i := 0; i < 100; i++ {
		v, ok := q.Pop()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	_, ok := q.Pop()
	assert.False(t, ok)
	assert.True(t, q.Empty())
}

// 多个生产者并发写入，每个生产者自身的顺序保持不变
func TestMpsc_PerProducerOrder(t *testing.T) {
	const producers, perProducer = 8, 1000
	type item struct{ producer, seq int }
	q := NewMpsc[item]()

	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(item{p, i})
			}
		}(p)
	}
	wg.Wait()

	last := make([]int, producers)
	for i := range last {
		last[i] = -1
	}
	count := 0
	for {
		v, ok := q.Pop()
		if !ok {
			break
		}
		require.Greater(t, v.seq, last[v.producer], "生产者 %d 的消息乱序", v.producer)
		last[v.producer] = v.seq
		count++
	}
	assert.Equal(t, producers*perProducer, count)
}
