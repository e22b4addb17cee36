package xplog

import (
	"fmt"
	"sync"
	"time"

	"github.com/omeyang/xplog/pkg/observability/xrotate"
	"github.com/omeyang/xplog/pkg/util/xproc"
)

// maxRetainedBuf 超过此容量的行缓冲在写入后释放，避免一条超长消息长期占用内存
const maxRetainedBuf = 64 << 10

// ActivePath 返回活动日志文件路径："<base>_<instanceID>.log"
func ActivePath(base, instanceID string) string {
	return base + "_" + instanceID + ".log"
}

// Writer 进程级滚动日志写入器
//
// 零值不可用，使用 [New] 或 [NewFromConfig] 创建。所有方法并发安全。
type Writer struct {
	path     string
	mode     RotationMode
	now      func() time.Time
	minLevel Level
	filter   bool
	onError  func(error)
	metrics  *metrics

	mu      sync.Mutex
	rotator xrotate.Rotator
	buf     []byte
	closed  bool
}

// New 创建 Writer，并立即创建（或截断）"<baseName>_<instanceID>.log"
//
// baseName 可以包含目录，缺失的父目录以 0750 权限创建。
// 路径无效、目录不可写或选项无效时返回错误。
func New(baseName string, opts ...Option) (*Writer, error) {
	if baseName == "" {
		return nil, ErrEmptyBaseName
	}

	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	instanceID := o.instanceID
	if !o.instanceIDSet {
		instanceID = xproc.InstanceID()
	}

	m, err := newMetrics(o.meterProvider)
	if err != nil {
		return nil, fmt.Errorf("xplog: create metrics: %w", err)
	}

	w := &Writer{
		path:     ActivePath(baseName, instanceID),
		mode:     o.rotation,
		now:      o.now,
		minLevel: o.minLevel,
		filter:   o.filter,
		onError:  o.onError,
		metrics:  m,
	}

	rotOpts := []xrotate.Option{
		xrotate.WithMaxBytes(o.maxSize),
		xrotate.WithFileMode(o.fileMode),
		xrotate.WithOnError(func(err error) { w.fail(opRotate, err) }),
		xrotate.WithOnRotate(func(t xrotate.Trigger) { w.metrics.recordRotation(w.mode, t) }),
	}

	var r xrotate.Rotator
	if o.rotation == RotationArchive {
		r, err = xrotate.NewLumberjack(w.path, rotOpts...)
	} else {
		r, err = xrotate.NewTruncate(w.path, append(rotOpts, xrotate.WithFs(o.fs))...)
	}
	if err != nil {
		return nil, fmt.Errorf("xplog: open %s: %w", w.path, err)
	}
	w.rotator = r
	return w, nil
}

// Path 返回活动日志文件路径
func (w *Writer) Path() string {
	return w.path
}

// Enabled 报告 level 的日志是否会被写入
func (w *Writer) Enabled(level Level) bool {
	if !w.filter {
		return true
	}
	r, ok := level.rank()
	if !ok {
		return true
	}
	floor, _ := w.minLevel.rank()
	return r >= floor
}

// Log 以 debug 级别记录日志，等价于 LogAt(LevelDebug, format, args...)
func (w *Writer) Log(format string, args ...any) {
	w.LogAt(LevelDebug, format, args...)
}

// LogAt 以指定级别记录日志
//
// 格式化、按需轮转和写入在同一临界区内完成。没有返回值，
// 失败通过 WithOnError 回调上报。
func (w *Writer) LogAt(level Level, format string, args ...any) {
	if !w.Enabled(level) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		w.fail(opWrite, ErrClosed)
		return
	}

	w.buf = appendLine(w.buf[:0], w.now(), level, format, args...)
	_, err := w.rotator.Write(w.buf)
	if cap(w.buf) > maxRetainedBuf {
		w.buf = nil
	}
	if err != nil {
		w.fail(opWrite, err)
		return
	}
	w.metrics.recordLine(level)
}

// Info 以 info 级别记录日志
func (w *Writer) Info(format string, args ...any) {
	w.LogAt(LevelInfo, format, args...)
}

// Debug 以 debug 级别记录日志
func (w *Writer) Debug(format string, args ...any) {
	w.LogAt(LevelDebug, format, args...)
}

// Warning 以 warning 级别记录日志
func (w *Writer) Warning(format string, args ...any) {
	w.LogAt(LevelWarning, format, args...)
}

// Error 以 error 级别记录日志
func (w *Writer) Error(format string, args ...any) {
	w.LogAt(LevelError, format, args...)
}

// Rotate 手动轮转
func (w *Writer) Rotate() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	if err := w.rotator.Rotate(); err != nil {
		w.fail(opRotate, err)
		return err
	}
	return nil
}

// Close 关闭日志文件，之后的日志调用被丢弃并上报 [ErrClosed]
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	w.closed = true
	return w.rotator.Close()
}

// fail 记录失败并通知回调，回调 panic 被 recover 隔离。
func (w *Writer) fail(op string, err error) {
	w.metrics.recordError(op)
	if w.onError == nil {
		return
	}
	defer func() { recover() }() //nolint:errcheck // recover 返回值无需检查
	w.onError(err)
}
