package main

import (
	"flag"
	"os"

	"go.uber.org/zap"

	"mediactor/internal/app"
	"mediactor/internal/config"
	"mediactor/internal/media"
	"mediactor/internal/node"
	"mediactor/pkg/glog"
)

func main() {
	path := flag.String("config", "", "yaml config file, empty for defaults")
	flag.Parse()

	cfg := config.Default()
	if *path != "" {
		var err error
		if cfg, err = config.Load(*path); err != nil {
			glog.Fatal("load config failed", zap.String("path", *path), zap.Error(err))
		}
	}

	n := node.New("media-pipeline", cfg)
	pipeline := app.New("pipeline", n.System, media.Options{
		Config:          cfg.Pipeline,
		MailboxCapacity: cfg.Actor.MailboxCapacity,
		Renderer:        media.NewConsoleRenderer(os.Stdout),
	})
	if err := n.StartUp(pipeline); err != nil {
		glog.Fatal("startup failed", zap.Error(err))
	}

	// 显示 actor 占用主协程，收到足够帧数或 SIGINT/SIGTERM 后返回
	err := pipeline.Run()
	if err != nil {
		glog.Error("actor system stopped with errors", zap.Error(err))
	}
	_ = n.Stop()
	if err != nil {
		os.Exit(1)
	}
}
