package glog

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	loggerValue  atomic.Value // *zap.Logger
	sugaredValue atomic.Value // *zap.SugaredLogger
	atomicLevel  = zap.NewAtomicLevel()
)

func init() {
	Init(DefaultConfig())
}

// Init 初始化全局 logger
// cfg: 配置对象，为 nil 时保持当前 logger 不变
func Init(cfg *Config, options ...Option) {
	if cfg == nil {
		return
	}
	opts := loadOptions(options...)
	atomicLevel.SetLevel(parseLevel(cfg.Level))
	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     "M",
		LevelKey:       "L",
		TimeKey:        "T",
		CallerKey:      "C",
		NameKey:        "N",
		StacktraceKey:  "S",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05.000000Z0700"),
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	cores := make([]zapcore.Core, 0, 2)
	if cfg.Path != "" {
		loggerWriter := newWriter(cfg.Path, cfg.File)
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(loggerWriter), atomicLevel))
	}
	if cfg.PrintConsole && opts.console != nil {
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(opts.console), atomicLevel))
	}
	mulCore := zapcore.NewTee(cores...)
	zapOpts := []zap.Option{
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
		zap.AddCallerSkip(1),
	}
	zapOpts = append(zapOpts, opts.zapOption...)
	logger := zap.New(mulCore, zapOpts...)

	loggerValue.Store(logger)
	sugaredValue.Store(logger.Sugar())
}

// Stop 同步所有缓冲的日志
// 控制台 Sync 在部分平台上会返回 EINVAL，这里只返回第一个错误供调用方决定是否忽略
func Stop() error {
	if l := getLogger(); l != nil {
		return l.Sync()
	}
	return nil
}

// SetLogLevel 设置日志级别
func SetLogLevel(logLevel zapcore.Level) {
	atomicLevel.SetLevel(logLevel)
}

// GetLevel 获取当前日志级别
func GetLevel() zapcore.Level {
	return atomicLevel.Level()
}

// WithOptions 在当前 logger 上追加 zap.Option
func WithOptions(opts ...zap.Option) {
	if l := getLogger(); l != nil {
		newLogger := l.WithOptions(opts...)
		loggerValue.Store(newLogger)
		sugaredValue.Store(newLogger.Sugar())
	}
}

// Logger 返回当前 zap logger，供需要 *zap.Logger 的第三方库使用
func Logger() *zap.Logger {
	if l := getLogger(); l != nil {
		return l.WithOptions(zap.AddCallerSkip(-1))
	}
	return zap.NewNop()
}

// getLogger 获取当前 logger
func getLogger() *zap.Logger {
	if v := loggerValue.Load(); v != nil {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return nil
}

// getSugaredLogger 获取当前 sugared logger
func getSugaredLogger() *zap.SugaredLogger {
	if v := sugaredValue.Load(); v != nil {
		if sl, ok := v.(*zap.SugaredLogger); ok {
			return sl
		}
	}
	return nil
}

// Debug 输出 Debug 级别日志
func Debug(msg string, fields ...zap.Field) {
	if l := getLogger(); l != nil {
		l.Debug(msg, fields...)
	}
}

// Info 输出 Info 级别日志
func Info(msg string, fields ...zap.Field) {
	if l := getLogger(); l != nil {
		l.Info(msg, fields...)
	}
}

// Warn 输出 Warn 级别日志
func Warn(msg string, fields ...zap.Field) {
	if l := getLogger(); l != nil {
		l.Warn(msg, fields...)
	}
}

// Error 输出 Error 级别日志
func Error(msg string, fields ...zap.Field) {
	if l := getLogger(); l != nil {
		l.Error(msg, fields...)
	}
}

// Fatal 输出 Fatal 级别日志并退出程序
func Fatal(msg string, fields ...zap.Field) {
	if l := getLogger(); l != nil {
		l.Fatal(msg, fields...)
	}
}

// Debugf 使用格式化字符串输出 Debug 级别日志
func Debugf(template string, args ...interface{}) {
	if sl := getSugaredLogger(); sl != nil {
		sl.Debugf(template, args...)
	}
}

// Infof 使用格式化字符串输出 Info 级别日志
func Infof(template string, args ...interface{}) {
	if sl := getSugaredLogger(); sl != nil {
		sl.Infof(template, args...)
	}
}

// Warnf 使用格式化字符串输出 Warn 级别日志
func Warnf(template string, args ...interface{}) {
	if sl := getSugaredLogger(); sl != nil {
		sl.Warnf(template, args...)
	}
}

// Errorf 使用格式化字符串输出 Error 级别日志
func Errorf(template string, args ...interface{}) {
	if sl := getSugaredLogger(); sl != nil {
		sl.Errorf(template, args...)
	}
}

// Fatalf 使用格式化字符串输出 Fatal 级别日志并退出程序
func Fatalf(template string, args ...interface{}) {
	if sl := getSugaredLogger(); sl != nil {
		sl.Fatalf(template, args...)
	}
}
