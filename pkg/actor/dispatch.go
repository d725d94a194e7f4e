// Package actor
// @Description:

package actor

import (
	"mediactor/pkg/lib/workers"
)

// Dispatcher 决定调度单元在哪里运行
type Dispatcher interface {
	Schedule(fn func(), recoverFun func(err interface{})) error
	Throughput() int
}

// 协程调度器，每个 actor 独占一个协程
type goroutineDispatcher int

func NewGoroutineDispatcher(throughput int) Dispatcher {
	return goroutineDispatcher(throughput)
}

func (goroutineDispatcher) Schedule(fn func(), recoverFun func(err interface{})) error {
	go workers.Try(fn, recoverFun)
	return nil
}

func (d goroutineDispatcher) Throughput() int {
	return int(d)
}

// 同步调度器，在调用方协程上运行
type synchronizedDispatcher int

func NewSynchronizedDispatcher(throughput int) Dispatcher {
	return synchronizedDispatcher(throughput)
}

func (synchronizedDispatcher) Schedule(fn func(), recoverFun func(err interface{})) error {
	workers.Try(fn, recoverFun)
	return nil
}

func (d synchronizedDispatcher) Throughput() int {
	return int(d)
}

// PoolDispatcher 协程池调度器，调度单元常驻占用池中的一个协程，池满时 Spawn 失败
type PoolDispatcher struct {
	pool       *workers.Pool
	throughput int
}

func NewPoolDispatcher(size, throughput int) (*PoolDispatcher, error) {
	pool, err := workers.NewPool(size)
	if err != nil {
		return nil, err
	}
	return &PoolDispatcher{pool: pool, throughput: throughput}, nil
}

func (d *PoolDispatcher) Schedule(fn func(), recoverFun func(err interface{})) error {
	return d.pool.Submit(fn, recoverFun)
}

func (d *PoolDispatcher) Throughput() int {
	return d.throughput
}

// Running 池中正在运行的调度单元数
func (d *PoolDispatcher) Running() int64 {
	return d.pool.Running()
}

func (d *PoolDispatcher) Release() {
	d.pool.Release()
}
