package media

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"mediactor/pkg/actor"
	"mediactor/pkg/glog"
)

// Role 下游发送失败时的处理策略
type Role int

const (
	// RoleCapture 下游满时丢帧并告警
	RoleCapture Role = iota
	// RoleStage 下游满时丢帧，只记 debug
	RoleStage
)

// forward 把 msg 发给下游
// 下游邮箱满：丢帧，dropped 为 true
// 下游已关闭且系统正在关闭：停止自己，返回 nil
// 下游已关闭而系统仍在运行：返回错误，当前 actor 随之终止
func forward[M, T any](ctx *actor.Context[M], role Role, next actor.Recipient[T], msg T) (dropped bool, err error) {
	err = next.Send(msg)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, actor.ErrFull):
		if role == RoleCapture {
			glog.Warn("downstream full, frame dropped", zap.String("actor", ctx.ActorID()), zap.Any("frame", msg))
		} else {
			glog.Debug("downstream full, frame dropped", zap.String("actor", ctx.ActorID()), zap.Any("frame", msg))
		}
		return true, nil
	case errors.Is(err, actor.ErrClosed) && ctx.System.State() != actor.StateRunning:
		ctx.Stop()
		return false, nil
	default:
		return false, errors.Wrapf(err, "%s: forward %v", ctx.ActorName(), msg)
	}
}
