/**
 * @Author: dingQingHui
 * @Description:
 * @File: workers
 * @Version: 1.0.0
 * @Date: 2025/1/2 10:16
 */

package workers

import (
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
)

// Pool 基于 ants 的协程池，池满时 Submit 立即失败而不是阻塞
type Pool struct {
	pool       *ants.Pool
	goCount    atomic.Int64
	panicCount atomic.Uint64
}

func NewPool(size int) (*Pool, error) {
	p, err := ants.NewPool(size, ants.WithNonblocking(true))
	if err != nil {
		return nil, err
	}
	return &Pool{pool: p}, nil
}

func (p *Pool) Submit(fn func(), recoverFun func(err interface{})) error {
	return p.pool.Submit(func() {
		p.goCount.Add(1)
		defer p.goCount.Add(-1)
		p.try(fn, recoverFun)
	})
}

func (p *Pool) try(fn func(), reFun func(err interface{})) {
	defer func() {
		if err := recover(); err != nil {
			p.panicCount.Add(1)
			if reFun != nil {
				reFun(err)
			}
		}
	}()
	fn()
}

// Running 正在执行的任务数
func (p *Pool) Running() int64 {
	return p.goCount.Load()
}

func (p *Pool) PanicCount() uint64 {
	return p.panicCount.Load()
}

func (p *Pool) Cap() int {
	return p.pool.Cap()
}

func (p *Pool) Release() {
	p.pool.Release()
}

func Try(fn func(), reFun func(err interface{})) {
	defer func() {
		if err := recover(); err != nil {
			if reFun != nil {
				reFun(err)
			}
		}
	}()
	fn()
}
