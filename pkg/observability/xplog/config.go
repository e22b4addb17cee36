package xplog

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/omeyang/xplog/pkg/config/xconf"
	"github.com/omeyang/xplog/pkg/util/xproc"
)

// ConfigKey 配置文件中 Writer 配置所在的键
const ConfigKey = "xplog"

// instance_id 的特殊取值
const (
	// InstanceIDPID 使用进程 ID（默认）
	InstanceIDPID = "pid"
	// InstanceIDUnique 使用进程 ID 加随机后缀，见 [xproc.UniqueInstanceID]
	InstanceIDUnique = "unique"
)

// Config Writer 的文件配置
//
//	xplog:
//	  base_name: /var/log/unit/engine
//	  instance_id: pid        # pid（默认）| unique | 任意字面值
//	  max_size_bytes: 1048576
//	  rotation: truncate      # truncate（默认）| archive
//	  min_level: ""           # 为空时不过滤
//	  file_mode: "0644"       # 八进制字符串，需加引号
//
// 零值字段表示使用默认值。
type Config struct {
	BaseName     string `koanf:"base_name"`
	InstanceID   string `koanf:"instance_id"`
	MaxSizeBytes int64  `koanf:"max_size_bytes"`
	Rotation     string `koanf:"rotation"`
	MinLevel     string `koanf:"min_level"`
	FileMode     string `koanf:"file_mode"`
}

// LoadConfig 从 YAML/JSON 文件的 "xplog" 键加载配置
func LoadConfig(path string) (Config, error) {
	c, err := xconf.New(path)
	if err != nil {
		return Config{}, err
	}
	return unmarshalConfig(c)
}

// LoadConfigBytes 从字节数据的 "xplog" 键加载配置
func LoadConfigBytes(data []byte, format xconf.Format) (Config, error) {
	c, err := xconf.NewFromBytes(data, format)
	if err != nil {
		return Config{}, err
	}
	return unmarshalConfig(c)
}

func unmarshalConfig(c xconf.Config) (Config, error) {
	var cfg Config
	if err := c.Unmarshal(ConfigKey, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Options 校验配置并转换为 Option 列表，不包含 BaseName
func (c Config) Options() ([]Option, error) {
	var opts []Option

	switch id := strings.TrimSpace(c.InstanceID); strings.ToLower(id) {
	case "", InstanceIDPID:
	case InstanceIDUnique:
		opts = append(opts, WithInstanceID(xproc.UniqueInstanceID()))
	default:
		if err := validateInstanceID(id); err != nil {
			return nil, fmt.Errorf("%w: instance_id: %w", ErrInvalidConfig, err)
		}
		opts = append(opts, WithInstanceID(id))
	}

	if c.MaxSizeBytes < 0 {
		return nil, fmt.Errorf("%w: max_size_bytes must be positive, got %d", ErrInvalidConfig, c.MaxSizeBytes)
	}
	if c.MaxSizeBytes > 0 {
		opts = append(opts, WithMaxSize(c.MaxSizeBytes))
	}

	if c.Rotation != "" {
		mode, err := ParseRotationMode(c.Rotation)
		if err != nil {
			return nil, fmt.Errorf("%w: rotation: %w", ErrInvalidConfig, err)
		}
		opts = append(opts, WithRotation(mode))
	}

	if c.MinLevel != "" {
		level, err := ParseLevel(c.MinLevel)
		if err != nil {
			return nil, fmt.Errorf("%w: min_level: %w", ErrInvalidConfig, err)
		}
		if _, ok := level.rank(); !ok {
			return nil, fmt.Errorf("%w: min_level: %q is not a standard level", ErrInvalidConfig, c.MinLevel)
		}
		opts = append(opts, WithMinLevel(level))
	}

	if c.FileMode != "" {
		mode, err := strconv.ParseUint(strings.TrimSpace(c.FileMode), 8, 32)
		if err != nil || mode == 0 || mode > 0o777 {
			return nil, fmt.Errorf("%w: file_mode: %q is not an octal permission", ErrInvalidConfig, c.FileMode)
		}
		opts = append(opts, WithFileMode(os.FileMode(mode)))
	}

	return opts, nil
}

// NewFromConfig 按配置创建 Writer，extra 中的选项覆盖配置项
func NewFromConfig(cfg Config, extra ...Option) (*Writer, error) {
	if cfg.BaseName == "" {
		return nil, fmt.Errorf("%w: base_name: %w", ErrInvalidConfig, ErrEmptyBaseName)
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return New(cfg.BaseName, append(opts, extra...)...)
}
