package actor

// Actor 顺序处理 M 类型消息的单元，状态只被自己的调度单元访问
// Handle 返回错误时该 actor 终止，错误以 HandlerError 形式上报给系统
type Actor[M any] interface {
	Name() string
	Handle(ctx *Context[M], msg M) error
}

// Initializer 可选，在处理第一条消息之前于调度单元内执行
type Initializer[M any] interface {
	OnInit(ctx *Context[M]) error
}

// Finalizer 可选，邮箱关闭后于调度单元内执行
type Finalizer interface {
	OnStop() error
}

type HandlerFunc[M any] func(ctx *Context[M], msg M) error

type funcActor[M any] struct {
	name string
	fn   HandlerFunc[M]
}

func (a *funcActor[M]) Name() string {
	return a.name
}

func (a *funcActor[M]) Handle(ctx *Context[M], msg M) error {
	return a.fn(ctx, msg)
}

// FuncActor 用函数构造无状态 actor
func FuncActor[M any](name string, fn HandlerFunc[M]) Actor[M] {
	return &funcActor[M]{name: name, fn: fn}
}
