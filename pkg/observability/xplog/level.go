package xplog

import (
	"fmt"
	"strconv"
	"strings"
)

// Level 日志级别
//
// 取值顺序与历史格式保持一致，不代表严重程度，过滤时使用 rank。
type Level int

// 日志级别常量
const (
	LevelInfo Level = iota
	LevelDebug
	LevelWarning
	LevelError
	// LevelCustom1 业务自定义级别，显示为 "unknown"
	LevelCustom1
	// LevelCustom2 业务自定义级别，显示为 "unknown"
	LevelCustom2
)

// levelUnknown 自定义级别和未知值的显示名称
const levelUnknown = "unknown"

// Levels 返回全部已定义级别
func Levels() []Level {
	return []Level{LevelInfo, LevelDebug, LevelWarning, LevelError, LevelCustom1, LevelCustom2}
}

// String 返回写入日志行的显示名称
//
// 映射是全函数：标准级别返回 info/debug/warning/error，
// 其余任何值（包括两个自定义级别）返回 "unknown"。
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return levelUnknown
	}
}

// Name 返回用于配置的唯一标识，与 ParseLevel 互逆
func (l Level) Name() string {
	switch l {
	case LevelCustom1:
		return "custom1"
	case LevelCustom2:
		return "custom2"
	}
	if l.isStandard() {
		return l.String()
	}
	return "level(" + strconv.Itoa(int(l)) + ")"
}

// Valid 报告 l 是否为已定义的级别
func (l Level) Valid() bool {
	return l >= LevelInfo && l <= LevelCustom2
}

func (l Level) isStandard() bool {
	return l >= LevelInfo && l <= LevelError
}

// rank 返回标准级别的严重程度（debug < info < warning < error），
// 自定义和未知级别返回 false。
func (l Level) rank() (int, bool) {
	switch l {
	case LevelDebug:
		return 0, true
	case LevelInfo:
		return 1, true
	case LevelWarning:
		return 2, true
	case LevelError:
		return 3, true
	default:
		return 0, false
	}
}

// MarshalText 实现 encoding.TextMarshaler 接口
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, int(l))
	}
	return []byte(l.Name()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler 接口
func (l *Level) UnmarshalText(data []byte) error {
	parsed, err := ParseLevel(string(data))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel 解析级别标识
// 支持 info/debug/warning/warn/error/custom1/custom2（大小写不敏感，自动 TrimSpace）
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "custom1":
		return LevelCustom1, nil
	case "custom2":
		return LevelCustom2, nil
	default:
		return LevelDebug, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}
