/**
 * @Author: dingQingHui
 * @Description:
 * @File: mailbox
 * @Version: 1.0.0
 * @Date: 2024/10/15 14:27
 */

package actor

import (
	"sync"
	"sync/atomic"

	"mediactor/pkg/lib"
)

// DefaultMailboxCapacity 默认邮箱容量，0 表示不限
const DefaultMailboxCapacity = 1024

// mailbox 多生产者单消费者邮箱
// 生产者之间用读锁并发入队，close 持写锁，保证关闭之后不会再有消息入队成功
type mailbox[M any] struct {
	queue    *lib.Mpsc[M]
	notify   chan struct{}
	done     chan struct{}
	mu       sync.RWMutex
	closed   bool
	capacity int64
	size     atomic.Int64

	inCnt, outCnt atomic.Uint64

	bound atomic.Bool
	owner atomic.Pointer[string]
}

func newMailbox[M any](capacity int) *mailbox[M] {
	if capacity < 0 {
		capacity = 0
	}
	return &mailbox[M]{
		queue:    lib.NewMpsc[M](),
		notify:   make(chan struct{}, 1),
		done:     make(chan struct{}),
		capacity: int64(capacity),
	}
}

func (mb *mailbox[M]) post(msg M) error {
	mb.mu.RLock()
	defer mb.mu.RUnlock()
	if mb.closed {
		return ErrClosed
	}
	if n := mb.size.Add(1); mb.capacity > 0 && n > mb.capacity {
		mb.size.Add(-1)
		return ErrFull
	}
	mb.queue.Push(msg)
	mb.inCnt.Add(1)
	select {
	case mb.notify <- struct{}{}:
	default:
	}
	return nil
}

// receive 阻塞直到有消息或邮箱关闭，关闭后剩余消息直接丢弃
func (mb *mailbox[M]) receive() (M, bool) {
	var zero M
	for {
		select {
		case <-mb.done:
			return zero, false
		default:
		}
		if msg, ok := mb.queue.Pop(); ok {
			mb.size.Add(-1)
			mb.outCnt.Add(1)
			return msg, true
		}
		select {
		case <-mb.notify:
		case <-mb.done:
			return zero, false
		}
	}
}

func (mb *mailbox[M]) close() bool {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	if mb.closed {
		return false
	}
	mb.closed = true
	close(mb.done)
	return true
}

func (mb *mailbox[M]) isClosed() bool {
	select {
	case <-mb.done:
		return true
	default:
		return false
	}
}

func (mb *mailbox[M]) len() int {
	return int(mb.size.Load())
}

func (mb *mailbox[M]) ownerID() string {
	if id := mb.owner.Load(); id != nil {
		return *id
	}
	return ""
}
