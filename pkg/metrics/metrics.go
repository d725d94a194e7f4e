// Package metrics 指标接口，运行时只依赖这些接口，具体实现（Prometheus 等）可插拔
package metrics

// Timer 从创建开始计时，ObserveDuration 记录耗时
type Timer interface {
	ObserveDuration()
}
