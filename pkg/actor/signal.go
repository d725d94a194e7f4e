package actor

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"mediactor/pkg/glog"
)

// NotifySignal 把收到的系统信号转换成 msg 发送给 r，未指定信号时监听 SIGINT、SIGTERM
// 返回的 stop 停止监听
func NotifySignal[M any](r Recipient[M], msg M, sigs ...os.Signal) (stop func()) {
	if len(sigs) == 0 {
		sigs = []os.Signal{os.Interrupt, syscall.SIGTERM}
	}
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-ch:
				glog.Info("received signal", zap.String("signal", sig.String()))
				if err := r.Send(msg); err != nil {
					glog.Warn("forward signal failed", zap.String("signal", sig.String()), zap.Error(err))
				}
			case <-done:
				return
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(ch)
			close(done)
		})
	}
}

// ShutdownActor 收到消息即请求系统关闭，通常配合 NotifySignal 使用
type ShutdownActor struct{}

func (ShutdownActor) Name() string {
	return "ShutdownActor"
}

func (ShutdownActor) Handle(ctx *Context[struct{}], _ struct{}) error {
	if err := ctx.System.Shutdown(); err != nil {
		glog.Warn("shutdown requested with error", zap.String("system", ctx.System.Name()), zap.Error(err))
	}
	return nil
}
