/**
 * @Author: dingQingHui
 * @Description:
 * @File: config
 * @Version: 1.0.0
 * @Date: 2024/9/23 11:14
 */

package glog

import (
	"io"
	"os"

	"go.uber.org/zap"
)

type Option func(*Options)

type Options struct {
	console   io.Writer
	zapOption []zap.Option
}

func loadOptions(options ...Option) *Options {
	opts := defaultOptions()
	for _, option := range options {
		option(opts)
	}
	return opts
}

func defaultOptions() *Options {
	return &Options{
		console: os.Stdout,
	}
}

// WithConsole 替换控制台输出目标
func WithConsole(w io.Writer) Option {
	return func(op *Options) {
		op.console = w
	}
}

// WithZapOptions 追加 zap.Option，例如全局字段或 Hook
func WithZapOptions(opts ...zap.Option) Option {
	return func(op *Options) {
		op.zapOption = append(op.zapOption, opts...)
	}
}
