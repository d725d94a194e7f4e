package event

import (
	"sync"

	"golang.org/x/exp/slices"
)

type entry[V any] struct {
	id      uint64
	handler func(V)
}

// Listener 泛型事件监听器，Notify 时按注册顺序同步调用
type Listener[V any] struct {
	mu       sync.RWMutex
	seq      uint64
	handlers []entry[V]
}

func NewListener[V any]() *Listener[V] {
	return &Listener[V]{}
}

// Register 注册监听函数，返回值用于注销
func (m *Listener[V]) Register(handler func(V)) (unregister func()) {
	if handler == nil {
		return func() {}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	id := m.seq
	m.handlers = append(m.handlers, entry[V]{id: id, handler: handler})
	return func() { m.unRegister(id) }
}

func (m *Listener[V]) unRegister(id uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	index := slices.IndexFunc(m.handlers, func(e entry[V]) bool {
		return e.id == id
	})
	if index < 0 {
		return
	}
	m.handlers = slices.Delete(m.handlers, index, index+1)
}

func (m *Listener[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.handlers)
}

// Notify 拷贝一份监听列表后在锁外调用，监听函数内部可以注销自己
func (m *Listener[V]) Notify(param V) {
	m.mu.RLock()
	handlers := slices.Clone(m.handlers)
	m.mu.RUnlock()
	for _, e := range handlers {
		e.handler(param)
	}
}
