package component_test

import (
	"context"
	"fmt"

	"mediactor/pkg/component"
)

// ExampleComponent 示例组件
type ExampleComponent struct {
	name string
}

func (e *ExampleComponent) Name() string {
	return e.name
}

func (e *ExampleComponent) Start(ctx context.Context) error {
	fmt.Printf("Starting component: %s\n", e.name)
	return nil
}

func (e *ExampleComponent) Stop(ctx context.Context) error {
	fmt.Printf("Stopping component: %s\n", e.name)
	return nil
}

func ExampleManager() {
	manager := component.New()

	// 注册组件
	_ = manager.Register(&ExampleComponent{name: "logger"})
	_ = manager.Register(&ExampleComponent{name: "metrics"})
	_ = manager.Register(&component.Func{
		ComponentName: "pipeline",
		OnStart: func(context.Context) error {
			fmt.Println("Starting component: pipeline")
			return nil
		},
	})

	// 启动所有组件
	ctx := context.Background()
	if err := manager.Start(ctx); err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		return
	}

	// 停止所有组件
	if err := manager.Stop(ctx); err != nil {
		fmt.Printf("Failed to stop: %v\n", err)
	}

	// Output:
	// Starting component: logger
	// Starting component: metrics
	// Starting component: pipeline
	// Stopping component: metrics
	// Stopping component: logger
}
