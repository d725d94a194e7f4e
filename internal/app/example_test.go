package app_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediactor/internal/app"
	"mediactor/internal/config"
	"mediactor/internal/media"
	"mediactor/internal/node"
	"mediactor/pkg/actor"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func fastConfig() *config.Config {
	cfg := config.Default()
	cfg.Log.Level = "warn"
	cfg.Pipeline.VideoCaptureInterval = time.Millisecond
	cfg.Pipeline.AudioCaptureInterval = time.Millisecond
	cfg.Pipeline.VideoEncodeLatency = 0
	cfg.Pipeline.AudioEncodeLatency = 0
	cfg.Pipeline.NetworkLatency = time.Millisecond
	cfg.Pipeline.FrameLimit = 10
	cfg.Pipeline.StatsInterval = 0
	return cfg
}

func TestAppRun(t *testing.T) {
	cfg := fastConfig()
	cfg.Actor.Dispatcher = "pool"
	cfg.Actor.PoolSize = 32
	cfg.Metrics.Enabled = true
	cfg.Metrics.Addr = "127.0.0.1:0"

	out := &syncBuffer{}
	n := node.New("app-test", cfg)
	pipeline := app.New("pipeline", n.System, media.Options{
		Config:          cfg.Pipeline,
		MailboxCapacity: cfg.Actor.MailboxCapacity,
		Renderer:        media.NewConsoleRenderer(out),
	})
	require.NoError(t, n.StartUp(pipeline))
	assert.NotEmpty(t, n.MetricsAddr())

	assert.NoError(t, pipeline.Run())
	assert.Equal(t, actor.StateStopped, n.System().State())
	assert.Contains(t, out.String(), "🖼 Display video frame 10\n")
	assert.NoError(t, n.Stop())
}

func TestAppRun_NotStarted(t *testing.T) {
	c := app.New("pipeline", func() *actor.System { return nil }, media.Options{})
	assert.ErrorIs(t, c.Run(), app.ErrNotStarted)
	assert.Error(t, c.Start(context.Background()))
}

func Example() {
	cfg := fastConfig()
	cfg.Pipeline.FrameLimit = 3
	cfg.Log.PrintConsole = false

	out := &syncBuffer{}
	n := node.New("example", cfg)
	pipeline := app.New("pipeline", n.System, media.Options{
		Config:   cfg.Pipeline,
		Renderer: media.NewConsoleRenderer(out),
	})
	if err := n.StartUp(pipeline); err != nil {
		fmt.Println(err)
		return
	}
	if err := pipeline.Run(); err != nil {
		fmt.Println(err)
	}
	_ = n.Stop()

	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if strings.HasPrefix(line, "🖼") {
			fmt.Println(line)
		}
	}
	// Output:
	// 🖼 Display video frame 0
	// 🖼 Display video frame 1
	// 🖼 Display video frame 2
	// 🖼 Display video frame 3
}
