package actor

import (
	"errors"
	"fmt"
)

// 发送相关错误
var (
	// ErrClosed 接收方邮箱已关闭（actor 已退出或系统正在关闭）
	ErrClosed = errors.New("actor: mailbox closed")
	// ErrFull 邮箱已满，消息未入队
	ErrFull = errors.New("actor: mailbox full")
)

// 系统相关错误
var (
	// ErrSystemShuttingDown 系统正在关闭，不再接受新的 actor
	ErrSystemShuttingDown = errors.New("actor: system is shutting down")
	// ErrSystemStopped 系统已停止
	ErrSystemStopped = errors.New("actor: system is stopped")
	// ErrSystemSealed Join 之后不再接受新的 actor
	ErrSystemSealed = errors.New("actor: system is sealed")
	// ErrAddressBound 地址已经绑定到另一个 actor
	ErrAddressBound = errors.New("actor: address already bound")
	// ErrAlreadyBlocking 每个系统只允许一个 actor 占用调用方协程
	ErrAlreadyBlocking = errors.New("actor: run and block already in use")
	// ErrJoinTimeout 等待 actor 退出超时
	ErrJoinTimeout = errors.New("actor: join timeout")
	// ErrHandlerPanic 处理函数发生 panic
	ErrHandlerPanic = errors.New("actor: handler panic")
	// ErrNilActor actor 为空
	ErrNilActor = errors.New("actor: actor is nil")
)

// SpawnError 调度单元启动失败
type SpawnError struct {
	Actor string
	Err   error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("actor: spawn %s failed: %v", e.Actor, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// HandlerError actor 处理消息（或 OnInit/OnStop）返回的错误，只终止该 actor
type HandlerError struct {
	Actor string
	Err   error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("actor: %s stopped: %v", e.Actor, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// ShutdownError 关闭过程中的错误，Op 为 preshutdown、postshutdown 或 join
type ShutdownError struct {
	Op  string
	Err error
}

func (e *ShutdownError) Error() string {
	return fmt.Sprintf("actor: shutdown %s: %v", e.Op, e.Err)
}

func (e *ShutdownError) Unwrap() error {
	return e.Err
}
