package node

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediactor/internal/config"
	"mediactor/pkg/actor"
	"mediactor/pkg/component"
)

func TestNode_StartStop(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "warn"
	cfg.Metrics.Enabled = true
	cfg.Metrics.Addr = "127.0.0.1:0"

	var started bool
	n := New("node-test", cfg)
	require.NoError(t, n.StartUp(&component.Func{
		ComponentName: "probe",
		OnStart: func(ctx context.Context) error {
			started = n.System() != nil
			return nil
		},
	}))
	assert.True(t, started)
	assert.Equal(t, actor.StateRunning, n.System().State())

	resp, err := http.Get("http://" + n.MetricsAddr() + cfg.Metrics.Path)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "go_goroutines")
	assert.Contains(t, string(body), "mediactor_actors_alive")

	assert.NoError(t, n.Stop())
	assert.Equal(t, actor.StateStopped, n.System().State())
	assert.NoError(t, n.Stop())
}

func TestActorComponent_JoinTimeout(t *testing.T) {
	cfg := config.Default()
	cfg.Actor.JoinTimeout = 20 * time.Millisecond
	n := New("node-timeout", cfg)
	c := NewActorComponent("actor", n)
	require.NoError(t, c.Start(context.Background()))

	release := make(chan struct{})
	started := make(chan struct{})
	addr, err := actor.Spawn(n.System(), actor.FuncActor("stuck", func(_ *actor.Context[int], _ int) error {
		close(started)
		<-release
		return nil
	}))
	require.NoError(t, err)
	require.NoError(t, addr.Send(1))
	// 邮箱关闭时未处理的消息会被丢弃，必须等处理函数真正卡住
	<-started

	err = c.Stop(context.Background())
	var serr *actor.ShutdownError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "join", serr.Op)
	close(release)
}
