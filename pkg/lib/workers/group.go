package workers

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// ErrWaitTimeout 等待协程退出超时
var ErrWaitTimeout = errors.New("等待协程退出超时，部分协程可能未完成清理")

// Group 调度单元计数，Add/Done 成对出现，Wait 等到计数归零
// 零值可用
type Group struct {
	wg      sync.WaitGroup
	running atomic.Int64
}

func (g *Group) Add(n int) {
	g.running.Add(int64(n))
	g.wg.Add(n)
}

func (g *Group) Done() {
	g.running.Add(-1)
	g.wg.Done()
}

// Running 尚未 Done 的数量
func (g *Group) Running() int64 {
	return g.running.Load()
}

func (g *Group) Wait() {
	g.wg.Wait()
}

// WaitTimeout 超时返回 ErrWaitTimeout，后台等待协程在计数归零后退出
func (g *Group) WaitTimeout(timeout time.Duration) error {
	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-done:
		return nil
	case <-timer.C:
		return ErrWaitTimeout
	}
}
