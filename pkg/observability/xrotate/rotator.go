package xrotate

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// 编译时断言：Rotator 接口是 io.WriteCloser 的超集
var _ io.WriteCloser = (Rotator)(nil)

// Rotator 日志轮转器接口
//
// 隐式实现 [io.WriteCloser]，额外提供 Rotate 方法用于手动触发轮转。
// 所有实现都必须是并发安全的：
//   - Write 在持锁期间内联完成阈值检查与轮转，不会重入公开的 Rotate
//   - Close 后调用 Write 或 Rotate 返回 [ErrClosed]
//   - Rotate 可以在任意时刻调用
type Rotator interface {
	// Write 写入日志数据，触发轮转条件时先轮转再写入
	Write(p []byte) (n int, err error)

	// Close 关闭轮转器，重复调用返回 [ErrClosed]
	Close() error

	// Rotate 手动触发轮转
	Rotate() error
}

// Trigger 轮转的触发方式
type Trigger string

const (
	// TriggerAuto 写入时超过阈值自动触发
	TriggerAuto Trigger = "auto"
	// TriggerManual 调用 Rotate 手动触发
	TriggerManual Trigger = "manual"
)

const (
	// DefaultMaxBytes 默认轮转阈值（1 MiB）
	DefaultMaxBytes int64 = 1 << 20

	// DefaultFileMode 默认日志文件权限
	DefaultFileMode os.FileMode = 0o644

	// maxBytesLimit 阈值上限（10 GiB）
	maxBytesLimit int64 = 10 << 30

	// megabyte lumberjack 的大小单位
	megabyte int64 = 1 << 20
)

// config 轮转器配置
type config struct {
	maxBytes  int64
	fileMode  os.FileMode
	fs        afero.Fs
	localTime bool

	// onError 内部尽力而为操作（如权限调整、关闭旧文件）失败时回调。
	// 回调不得向同一 Rotator 写入数据，否则会死锁。
	onError func(error)

	// onRotate 每次轮转成功后在持锁状态下回调，同样不得写入同一 Rotator。
	onRotate func(Trigger)
}

// Option 轮转器配置选项函数
type Option func(*config)

// WithMaxBytes 设置轮转阈值（字节）
func WithMaxBytes(n int64) Option {
	return func(c *config) {
		c.maxBytes = n
	}
}

// WithFileMode 设置日志文件权限
func WithFileMode(mode os.FileMode) Option {
	return func(c *config) {
		c.fileMode = mode
	}
}

// WithFs 设置文件系统（仅 NewTruncate 使用），默认为操作系统文件系统
func WithFs(fs afero.Fs) Option {
	return func(c *config) {
		c.fs = fs
	}
}

// WithLocalTime 设置备份文件名是否使用本地时间（仅 NewLumberjack 使用），默认 UTC
func WithLocalTime(local bool) Option {
	return func(c *config) {
		c.localTime = local
	}
}

// WithOnError 设置内部错误回调
//
// 不使用 slog 等日志库记录内部错误：Rotator 本身就是日志输出目标，
// 回调函数不得向同一 Rotator 写入数据。
func WithOnError(fn func(error)) Option {
	return func(c *config) {
		c.onError = fn
	}
}

// WithOnRotate 设置轮转成功回调，参数为触发方式
func WithOnRotate(fn func(Trigger)) Option {
	return func(c *config) {
		c.onRotate = fn
	}
}

func newConfig(opts []Option) (*config, error) {
	cfg := &config{
		maxBytes: DefaultMaxBytes,
		fileMode: DefaultFileMode,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	if cfg.maxBytes <= 0 || cfg.maxBytes > maxBytesLimit {
		return nil, fmt.Errorf("%w: got %d, want 1~%d", ErrInvalidMaxSize, cfg.maxBytes, maxBytesLimit)
	}
	// FileMode 仅允许权限位（低 9 位），拒绝文件类型位、setuid/setgid 等
	if cfg.fileMode == 0 || cfg.fileMode&^os.FileMode(0o777) != 0 {
		return nil, fmt.Errorf("%w: got %04o, only permission bits (0001~0777) allowed",
			ErrInvalidFileMode, cfg.fileMode)
	}
	return cfg, nil
}

// hooks 封装回调，回调 panic 被 recover 隔离，防止通知反向中断写入流程。
type hooks struct {
	onError  func(error)
	onRotate func(Trigger)
}

func (h hooks) reportError(err error) {
	if err != nil && h.onError != nil {
		defer func() { recover() }() //nolint:errcheck // recover 返回值无需检查
		h.onError(err)
	}
}

func (h hooks) rotated(t Trigger) {
	if h.onRotate != nil {
		defer func() { recover() }() //nolint:errcheck // recover 返回值无需检查
		h.onRotate(t)
	}
}
