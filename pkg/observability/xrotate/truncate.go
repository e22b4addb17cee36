package xrotate

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/afero"

	"github.com/omeyang/xplog/pkg/util/xfile"
)

// truncateRotator 截断式轮转器
//
// 轮转即关闭当前句柄并以 O_TRUNC 重新打开同一路径，文件名在整个生命周期内不变。
// 同一时刻最多持有一个打开的句柄，size 与句柄的读写都在 mu 保护下进行。
type truncateRotator struct {
	fs       afero.Fs
	path     string
	maxBytes int64
	fileMode os.FileMode
	hooks    hooks

	mu     sync.Mutex
	file   afero.File
	size   int64 // 当前文件写入位置
	closed bool
}

// NewTruncate 创建截断式轮转器，并立即创建（或截断）日志文件
//
// 参数:
//   - filename: 日志文件路径（必需），经 [xfile.SanitizePath] 规范化
//   - opts: 可选配置项
//
// 父目录不存在时自动创建（权限 0750）。
func NewTruncate(filename string, opts ...Option) (Rotator, error) {
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

	fs := cfg.fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if err := xfile.EnsureDir(fs, safePath); err != nil {
		return nil, err
	}

	r := &truncateRotator{
		fs:       fs,
		path:     safePath,
		maxBytes: cfg.maxBytes,
		fileMode: cfg.fileMode,
		hooks:    hooks{onError: cfg.onError, onRotate: cfg.onRotate},
	}
	if err := r.openLocked(); err != nil {
		return nil, err
	}
	return r, nil
}

// openLocked 以截断方式打开日志文件，调用方必须持有 mu（构造期间除外）。
func (r *truncateRotator) openLocked() error {
	f, err := r.fs.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, r.fileMode)
	if err != nil {
		return fmt.Errorf("xrotate: open %s: %w", r.path, err)
	}
	r.file = f
	r.size = 0

	// 已存在的文件保留原权限，且创建时受 umask 影响，这里统一调整
	//#nosec G302 -- 日志文件权限由调用方配置决定
	r.hooks.reportError(r.fs.Chmod(r.path, r.fileMode))
	return nil
}

// rotateLocked 关闭当前句柄并重新打开同一路径，调用方必须持有 mu。
func (r *truncateRotator) rotateLocked() error {
	if r.file != nil {
		r.hooks.reportError(r.file.Close())
		r.file = nil
	}
	return r.openLocked()
}

// Write 实现 io.Writer 接口
//
// 当前大小严格超过阈值时，先在同一临界区内截断重开，再写入 p。
// 上一次重开失败导致没有可用句柄时，本次写入会重试打开。
func (r *truncateRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return 0, ErrClosed
	}

	switch {
	case r.file == nil:
		if err := r.openLocked(); err != nil {
			return 0, err
		}
	case r.size > r.maxBytes:
		if err := r.rotateLocked(); err != nil {
			return 0, err
		}
		r.hooks.rotated(TriggerAuto)
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

// Rotate 手动触发轮转，当前文件内容被丢弃
func (r *truncateRotator) Rotate() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if err := r.rotateLocked(); err != nil {
		return err
	}
	r.hooks.rotated(TriggerManual)
	return nil
}

// Close 实现 io.Closer 接口，重复调用返回 [ErrClosed]
func (r *truncateRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	r.closed = true
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
