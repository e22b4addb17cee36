package xplog

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/metric"

	"github.com/omeyang/xplog/pkg/observability/xrotate"
)

// RotationMode 轮转模式
type RotationMode string

const (
	// RotationTruncate 截断并重新打开同名文件（默认）
	RotationTruncate RotationMode = "truncate"
	// RotationArchive 归档为带时间戳的备份后创建新文件
	RotationArchive RotationMode = "archive"
)

// ParseRotationMode 解析轮转模式（大小写不敏感）
func ParseRotationMode(s string) (RotationMode, error) {
	switch mode := RotationMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case RotationTruncate, RotationArchive:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRotation, s)
	}
}

const (
	// DefaultMaxSize 默认轮转阈值（1 MiB）
	DefaultMaxSize = xrotate.DefaultMaxBytes

	// DefaultFileMode 默认日志文件权限
	DefaultFileMode = xrotate.DefaultFileMode
)

// options Writer 配置
type options struct {
	instanceID    string
	instanceIDSet bool
	maxSize       int64
	rotation      RotationMode
	fs            afero.Fs
	fileMode      os.FileMode
	now           func() time.Time
	minLevel      Level
	filter        bool
	onError       func(error)
	meterProvider metric.MeterProvider
}

// Option Writer 配置选项函数
type Option func(*options)

func defaultOptions() *options {
	return &options{
		maxSize:  DefaultMaxSize,
		rotation: RotationTruncate,
		fileMode: DefaultFileMode,
		now:      time.Now,
	}
}

// WithInstanceID 设置实例 ID，替代默认的进程 ID
//
// 实例 ID 直接拼入文件名，不能为空，不能包含路径分隔符。
func WithInstanceID(id string) Option {
	return func(o *options) {
		o.instanceID = id
		o.instanceIDSet = true
	}
}

// WithMaxSize 设置轮转阈值（字节），默认 [DefaultMaxSize]
//
// 归档模式下阈值向上取整到 MiB。
func WithMaxSize(bytes int64) Option {
	return func(o *options) {
		o.maxSize = bytes
	}
}

// WithRotation 设置轮转模式，默认 [RotationTruncate]
func WithRotation(mode RotationMode) Option {
	return func(o *options) {
		o.rotation = mode
	}
}

// WithFs 设置截断模式使用的文件系统，默认为操作系统文件系统
func WithFs(fs afero.Fs) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithFileMode 设置日志文件权限，默认 [DefaultFileMode]
func WithFileMode(mode os.FileMode) Option {
	return func(o *options) {
		o.fileMode = mode
	}
}

// WithClock 设置时间来源，nil 表示 time.Now，结果总是转换为 UTC
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithMinLevel 启用级别过滤
//
// 标准级别按 debug < info < warning < error 比较，低于 level 的行被丢弃；
// 自定义和未知级别总是写入。level 必须是标准级别。
func WithMinLevel(level Level) Option {
	return func(o *options) {
		o.minLevel = level
		o.filter = true
	}
}

// WithOnError 设置写入、轮转失败的回调
//
// 回调在 Writer 持锁期间执行，不得调用同一 Writer 的任何方法，否则会死锁。
// 回调 panic 会被 recover。
func WithOnError(fn func(error)) Option {
	return func(o *options) {
		o.onError = fn
	}
}

// WithMeterProvider 设置 OpenTelemetry MeterProvider，nil 表示不收集指标
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		o.meterProvider = mp
	}
}

func (o *options) validate() error {
	if o.instanceIDSet {
		if err := validateInstanceID(o.instanceID); err != nil {
			return err
		}
	}
	if o.rotation != RotationTruncate && o.rotation != RotationArchive {
		return fmt.Errorf("%w: %q", ErrInvalidRotation, o.rotation)
	}
	if o.filter {
		if _, ok := o.minLevel.rank(); !ok {
			return fmt.Errorf("%w: min level must be debug/info/warning/error, got %s",
				ErrInvalidLevel, o.minLevel.Name())
		}
	}
	if o.now == nil {
		o.now = time.Now
	}
	return nil
}

func validateInstanceID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty", ErrInvalidInstanceID)
	}
	if strings.ContainsAny(id, "/\\\x00") {
		return fmt.Errorf("%w: %q contains path separator or null byte", ErrInvalidInstanceID, id)
	}
	return nil
}
