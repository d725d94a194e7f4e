package actor

const defaultThroughput = 300

type Option func(*Options)

type Options struct {
	MailboxCapacity int
	Dispatcher      Dispatcher
	Metrics         Metrics
}

func loadOptions(options ...Option) *Options {
	opts := &Options{
		MailboxCapacity: DefaultMailboxCapacity,
		Dispatcher:      NewGoroutineDispatcher(defaultThroughput),
		Metrics:         NopMetrics(),
	}
	for _, option := range options {
		option(opts)
	}
	return opts
}

// WithMailboxCapacity Spawn 新建邮箱的默认容量，0 表示不限
func WithMailboxCapacity(n int) Option {
	return func(op *Options) {
		op.MailboxCapacity = n
	}
}

func WithDispatcher(d Dispatcher) Option {
	return func(op *Options) {
		if d != nil {
			op.Dispatcher = d
		}
	}
}

func WithMetrics(m Metrics) Option {
	return func(op *Options) {
		if m != nil {
			op.Metrics = m
		}
	}
}
