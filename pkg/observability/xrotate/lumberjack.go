package xrotate

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/afero"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/omeyang/xplog/pkg/util/xfile"
)

// lumberjackRotator 基于 lumberjack 的归档式 Rotator 实现
//
// 轮转时当前文件被重命名为 "<name>-<2006-01-02T15-04-05.000>.<ext>"，
// 随后创建新的同名文件。MaxBackups/MaxAge 固定为 0、Compress 固定为 false，
// 即不清理也不压缩备份。
type lumberjackRotator struct {
	logger   *lumberjack.Logger
	path     string
	fileMode os.FileMode
	maxBytes int64 // 向上取整到 MiB 后的阈值
	hooks    hooks

	mu     sync.Mutex
	size   int64 // 当前文件大小估算，用于识别 lumberjack 的自动轮转
	closed bool

	// 可注入的系统调用（nil 时使用 os 标准库），仅用于测试
	chmodFn func(string, os.FileMode) error
}

// NewLumberjack 创建归档式轮转器
//
// 构造时立即执行一次轮转：已存在的同名文件被归档为备份，随后创建空的活动文件。
// 阈值按 MiB 向上取整（lumberjack 的最小粒度）。
func NewLumberjack(filename string, opts ...Option) (Rotator, error) {
	if filename == "" {
		return nil, ErrEmptyFilename
	}

	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	safePath, err := xfile.SanitizePath(filename)
	if err != nil {
		return nil, err
	}
	if err := xfile.EnsureDir(afero.NewOsFs(), safePath); err != nil {
		return nil, err
	}

	maxMB := (cfg.maxBytes + megabyte - 1) / megabyte

	r := &lumberjackRotator{
		logger: &lumberjack.Logger{
			Filename:  safePath,
			MaxSize:   int(maxMB),
			LocalTime: cfg.localTime,
		},
		path:     safePath,
		fileMode: cfg.fileMode,
		maxBytes: maxMB * megabyte,
		hooks:    hooks{onError: cfg.onError, onRotate: cfg.onRotate},
	}

	if err := r.logger.Rotate(); err != nil {
		return nil, fmt.Errorf("xrotate: open %s: %w", safePath, err)
	}
	r.applyFileMode()
	return r, nil
}

// applyFileMode 调整活动文件权限，lumberjack 新建文件固定使用 0600。
func (r *lumberjackRotator) applyFileMode() {
	chmod := r.chmodFn
	if chmod == nil {
		chmod = os.Chmod
	}
	//#nosec G302 -- 日志文件权限由调用方配置决定
	r.hooks.reportError(chmod(r.path, r.fileMode))
}

// Write 实现 io.Writer 接口
//
// lumberjack 在 size+len(p) 超过阈值时先轮转再写入，这里按相同条件
// 识别自动轮转，以便回调通知和重新调整权限。
func (r *lumberjackRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return 0, ErrClosed
	}

	rotating := r.size+int64(len(p)) > r.maxBytes
	n, err := r.logger.Write(p)
	if err != nil {
		return n, err
	}

	if rotating {
		r.size = 0
		r.applyFileMode()
		r.hooks.rotated(TriggerAuto)
	}
	r.size += int64(n)
	return n, nil
}

// Rotate 手动触发轮转，当前文件被归档为备份
func (r *lumberjackRotator) Rotate() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if err := r.logger.Rotate(); err != nil {
		return err
	}
	r.size = 0
	r.applyFileMode()
	r.hooks.rotated(TriggerManual)
	return nil
}

// Close 实现 io.Closer 接口，重复调用返回 [ErrClosed]
func (r *lumberjackRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	r.closed = true
	return r.logger.Close()
}
