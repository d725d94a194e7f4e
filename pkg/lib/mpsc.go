// Package lib
// @Description: 无锁消息队列

package lib

import (
	"sync/atomic"
)

type node[T any] struct {
	next atomic.Pointer[node[T]]
	val  T
}

// Mpsc 多生产者单消费者队列，Push 可并发调用，Pop/Empty 只能由唯一的消费者调用
type Mpsc[T any] struct {
	head atomic.Pointer[node[T]]
	tail *node[T]
}

func NewMpsc[T any]() *Mpsc[T] {
	q := &Mpsc[T]{}
	stub := &node[T]{}
	q.head.Store(stub)
	q.tail = stub
	return q
}

func (q *Mpsc[T]) Push(x T) {
	n := &node[T]{val: x}
	prev := q.head.Swap(n)
	prev.next.Store(n)
}

// Pop 队列为空（或生产者尚未完成链接）时返回 false
func (q *Mpsc[T]) Pop() (T, bool) {
	var zero T
	next := q.tail.next.Load()
	if next == nil {
		return zero, false
	}
	q.tail = next
	v := next.val
	next.val = zero
	return v, true
}

func (q *Mpsc[T]) Empty() bool {
	return q.tail.next.Load() == nil
}
