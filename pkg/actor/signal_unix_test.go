//go:build unix

package actor

import (
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifySignal_ShutdownActor(t *testing.T) {
	var preShutdown int
	sys := WithCallbacks("signal", Callbacks{PreShutdown: func() error {
		preShutdown++
		return nil
	}})
	addr, err := Spawn[struct{}](sys, ShutdownActor{})
	require.NoError(t, err)

	stop := NotifySignal[struct{}](addr, struct{}{}, syscall.SIGUSR1)
	defer stop()

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGUSR1))
	select {
	case <-sys.Handle().Stopped():
	case <-time.After(2 * time.Second):
		t.Fatal("信号没有触发关闭")
	}
	require.NoError(t, sys.Join())
	assert.Equal(t, 1, preShutdown)

	stop()
	stop()
}
