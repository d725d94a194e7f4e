package component

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recorder(name string, log *[]string, startErr, stopErr error) *Func {
	return &Func{
		ComponentName: name,
		OnStart: func(context.Context) error {
			*log = append(*log, "start:"+name)
			return startErr
		},
		OnStop: func(context.Context) error {
			*log = append(*log, "stop:"+name)
			return stopErr
		},
	}
}

func TestManager_Rollback(t *testing.T) {
	var log []string
	m := New()
	require.NoError(t, m.Register(recorder("a", &log, nil, nil)))
	require.NoError(t, m.Register(recorder("b", &log, nil, nil)))
	require.NoError(t, m.Register(recorder("c", &log, errors.New("boom"), nil)))

	err := m.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'c'")
	assert.Equal(t, []string{"start:a", "start:b", "start:c", "stop:b", "stop:a"}, log)
	assert.False(t, m.IsStarted())
}

func TestManager_StopCollectsErrors(t *testing.T) {
	var log []string
	e1, e2 := errors.New("e1"), errors.New("e2")
	m := New()
	require.NoError(t, m.Register(recorder("a", &log, nil, e1)))
	require.NoError(t, m.Register(recorder("b", &log, nil, e2)))
	require.NoError(t, m.Start(context.Background()))

	err := m.StopWithTimeout(0)
	assert.ErrorIs(t, err, e1)
	assert.ErrorIs(t, err, e2)
	assert.True(t, m.IsStopped())
	assert.NoError(t, m.Stop(context.Background()))
	assert.Error(t, m.Start(context.Background()))
}

func TestManager_Register(t *testing.T) {
	m := New()
	assert.Error(t, m.Register(nil))
	assert.Error(t, m.Register(&Func{}))
	require.NoError(t, m.Register(&Func{ComponentName: "x"}))
	assert.Error(t, m.Register(&Func{ComponentName: "x"}))
	assert.Equal(t, []string{"x"}, m.GetComponentNames())

	require.NoError(t, m.Start(context.Background()))
	assert.Error(t, m.Register(&Func{ComponentName: "y"}))
	assert.Error(t, m.Start(context.Background()))
}
