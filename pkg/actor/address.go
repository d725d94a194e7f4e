package actor

// Recipient 只暴露发送能力的类型擦除地址，"任何接受 M 的东西"
type Recipient[M any] interface {
	Send(msg M) error
}

// RecipientFunc 用函数实现 Recipient
type RecipientFunc[M any] func(msg M) error

func (f RecipientFunc[M]) Send(msg M) error {
	return f(msg)
}

// MapRecipient 把接受 T 的 Recipient 适配成接受 M，转换在发送方协程执行
func MapRecipient[M, T any](r Recipient[T], conv func(M) T) Recipient[M] {
	return RecipientFunc[M](func(msg M) error {
		return r.Send(conv(msg))
	})
}

type AddressOption func(*addressOptions)

type addressOptions struct {
	capacity int
}

// WithCapacity 邮箱容量，0 表示不限
func WithCapacity(n int) AddressOption {
	return func(op *addressOptions) {
		op.capacity = n
	}
}

// Address 绑定到某个 actor 邮箱的发送句柄，值拷贝即克隆
// 零值 Address 没有邮箱，Send 返回 ErrClosed
type Address[M any] struct {
	mb *mailbox[M]
}

// NewAddress 创建一个尚未绑定 actor 的地址，之后通过 Prepare(...).WithAddr 绑定
// 绑定之前发送的消息会先排队
func NewAddress[M any](opts ...AddressOption) Address[M] {
	op := &addressOptions{capacity: DefaultMailboxCapacity}
	for _, opt := range opts {
		opt(op)
	}
	return Address[M]{mb: newMailbox[M](op.capacity)}
}

// Send 入队后立即返回，不等待处理
func (a Address[M]) Send(msg M) error {
	if a.mb == nil {
		return ErrClosed
	}
	return a.mb.post(msg)
}

func (a Address[M]) Recipient() Recipient[M] {
	return a
}

// ID 绑定的 actor ID，未绑定时为空
func (a Address[M]) ID() string {
	if a.mb == nil {
		return ""
	}
	return a.mb.ownerID()
}

func (a Address[M]) Closed() bool {
	return a.mb == nil || a.mb.isClosed()
}

// Len 待处理的消息数
func (a Address[M]) Len() int {
	if a.mb == nil {
		return 0
	}
	return a.mb.len()
}

// Equal 两个地址是否指向同一个邮箱
func (a Address[M]) Equal(other Address[M]) bool {
	return a.mb == other.mb
}

func (a Address[M]) String() string {
	if id := a.ID(); id != "" {
		return id
	}
	return "<unbound>"
}
