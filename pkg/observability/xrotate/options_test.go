package xrotate

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := newConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxBytes, cfg.maxBytes)
	assert.Equal(t, DefaultFileMode, cfg.fileMode)
	assert.Nil(t, cfg.fs)
	assert.False(t, cfg.localTime)
}

func TestNewConfigNilOption(t *testing.T) {
	cfg, err := newConfig([]Option{nil, WithMaxBytes(64), nil})
	require.NoError(t, err)
	assert.Equal(t, int64(64), cfg.maxBytes)
}

func TestNewConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{"阈值为零", []Option{WithMaxBytes(0)}, ErrInvalidMaxSize},
		{"阈值为负数", []Option{WithMaxBytes(-1)}, ErrInvalidMaxSize},
		{"阈值超过上限", []Option{WithMaxBytes(maxBytesLimit + 1)}, ErrInvalidMaxSize},
		{"权限为零", []Option{WithFileMode(0)}, ErrInvalidFileMode},
		{"包含 setuid 位", []Option{WithFileMode(os.ModeSetuid | 0o644)}, ErrInvalidFileMode},
		{"包含目录位", []Option{WithFileMode(os.ModeDir | 0o755)}, ErrInvalidFileMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newConfig(tt.opts)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

func TestNewConfigBoundaries(t *testing.T) {
	_, err := newConfig([]Option{WithMaxBytes(1)})
	assert.NoError(t, err)

	_, err = newConfig([]Option{WithMaxBytes(maxBytesLimit)})
	assert.NoError(t, err)

	_, err = newConfig([]Option{WithFileMode(0o777)})
	assert.NoError(t, err)
}

func TestHooksRecoverPanics(t *testing.T) {
	h := hooks{
		onError:  func(error) { panic("boom") },
		onRotate: func(Trigger) { panic("boom") },
	}

	assert.NotPanics(t, func() { h.reportError(errors.New("x")) })
	assert.NotPanics(t, func() { h.rotated(TriggerAuto) })
}

func TestHooksNil(t *testing.T) {
	var h hooks
	assert.NotPanics(t, func() { h.reportError(errors.New("x")) })
	assert.NotPanics(t, func() { h.rotated(TriggerManual) })
}

func TestHooksSkipNilError(t *testing.T) {
	called := false
	h := hooks{onError: func(error) { called = true }}
	h.reportError(nil)
	assert.False(t, called)
}
