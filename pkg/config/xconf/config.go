package xconf

import "github.com/knadh/koanf/v2"

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	// FormatYAML YAML 格式。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// Config 已加载的只读配置。
type Config interface {
	// Client 返回底层的 koanf 实例，用于 Exists/Keys 等 koanf 原生操作。
	Client() *koanf.Koanf

	// Unmarshal 将指定路径的配置反序列化到目标结构体。
	// path 为空字符串时反序列化整个配置。
	Unmarshal(path string, target any) error

	// Path 返回配置文件路径，从字节数据创建的 Config 返回空字符串。
	Path() string

	// Format 返回配置格式。
	Format() Format
}

// options 配置加载选项。
type options struct {
	delim string // 键分隔符，默认 "."
	tag   string // 结构体标签名，默认 "koanf"
}

// Option 配置加载选项函数。
type Option func(*options)

// WithDelim 设置配置键分隔符，例如 "xplog.base_name" 中的 "."。
func WithDelim(delim string) Option {
	return func(o *options) {
		o.delim = delim
	}
}

// WithTag 设置 Unmarshal 使用的结构体标签名。
func WithTag(tag string) Option {
	return func(o *options) {
		o.tag = tag
	}
}

func newOptions(opts []Option) *options {
	o := &options{delim: ".", tag: "koanf"}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}
