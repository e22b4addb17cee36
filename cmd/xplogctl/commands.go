package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xplog/pkg/observability/xplog"
	"github.com/omeyang/xplog/pkg/observability/xrotate"
	"github.com/omeyang/xplog/pkg/util/xproc"
)

// 全局 flag 名称
const (
	flagBase       = "base"
	flagInstanceID = "instance-id"
	flagConfig     = "config"
	flagRotation   = "rotation"
	flagMaxSize    = "max-size"
	flagVerbose    = "verbose"
	flagLevel      = "level"
)

// usageError 参数错误，退出码为 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func newUsageError(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// cliUsageMarkers urfave/cli 参数解析错误消息的特征片段。
var cliUsageMarkers = []string{
	"flag provided but not defined",
	"invalid value",
	"flag needs an argument",
	"No help topic",
}

// isCLIUsageError 判断是否为 CLI 框架产生的参数错误（未知 flag、非法取值等）。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, marker := range cliUsageMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createWriteCommand(),
		createPathCommand(),
		createLevelsCommand(),
		createRotateCommand(),
	}
}

// createWriteCommand 创建 write 子命令。
func createWriteCommand() *cli.Command {
	return &cli.Command{
		Name:      "write",
		Aliases:   []string{"w"},
		Usage:     "追加一行日志",
		ArgsUsage: "<message...>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagLevel,
				Aliases: []string{"l"},
				Usage:   "日志级别: info | debug | warning | error | custom1 | custom2",
				Value:   xplog.LevelDebug.Name(),
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdWrite(cmd, cmd.String(flagLevel), cmd.Args().Slice())
		},
	}
}

// createPathCommand 创建 path 子命令。
func createPathCommand() *cli.Command {
	return &cli.Command{
		Name:  "path",
		Usage: "打印活动日志文件路径",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdPath(cmd)
		},
	}
}

// createLevelsCommand 创建 levels 子命令。
func createLevelsCommand() *cli.Command {
	return &cli.Command{
		Name:  "levels",
		Usage: "列出全部日志级别",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdLevels(cmd.Root().Writer)
		},
	}
}

// createRotateCommand 创建 rotate 子命令。
func createRotateCommand() *cli.Command {
	return &cli.Command{
		Name:  "rotate",
		Usage: "开始新的活动文件（truncate 清空，archive 归档原文件）",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdRotate(cmd)
		},
	}
}

func cmdWrite(cmd *cli.Command, levelName string, words []string) error {
	if len(words) == 0 {
		return newUsageError("write 需要日志消息")
	}
	level, err := xplog.ParseLevel(levelName)
	if err != nil {
		return newUsageError("%v", err)
	}

	w, failures, err := openWriter(cmd)
	if err != nil {
		return err
	}

	// 消息作为普通文本写入，不解释其中的格式化动词
	w.LogAt(level, "%s", strings.Join(words, " "))
	closeErr := w.Close()

	if err := failures.first(); err != nil {
		return fmt.Errorf("write %s: %w", w.Path(), err)
	}
	if closeErr != nil {
		return fmt.Errorf("close %s: %w", w.Path(), closeErr)
	}
	diagLogger(cmd).Debug("line written", "path", w.Path(), "level", level.Name())
	return nil
}

func cmdPath(cmd *cli.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if _, err := cfg.Options(); err != nil {
		return newUsageError("%v", err)
	}
	fmt.Fprintln(cmd.Root().Writer, xplog.ActivePath(cfg.BaseName, resolveInstanceID(cfg.InstanceID)))
	return nil
}

func cmdLevels(out io.Writer) error {
	for _, l := range xplog.Levels() {
		fmt.Fprintf(out, "%d\t%s\t%s\n", int(l), l.Name(), l)
	}
	return nil
}

// cmdRotate 开始新的活动文件。
//
// 打开 Writer 本身就会处理已存在的同名文件（truncate 清空，archive 归档为备份），
// 再调用 Writer.Rotate 会在同一毫秒内产生同名备份并覆盖刚归档的内容。
func cmdRotate(cmd *cli.Command) error {
	w, _, err := openWriter(cmd)
	if err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close %s: %w", w.Path(), err)
	}
	fmt.Fprintf(cmd.Root().Writer, "rotated %s\n", w.Path())
	return nil
}

// errorSink 收集 Writer 上报的失败，只保留第一个。
type errorSink struct {
	err error
}

func (s *errorSink) report(err error) {
	if s.err == nil {
		s.err = err
	}
}

func (s *errorSink) first() error { return s.err }

// openWriter 按配置文件和命令行选项创建 Writer。
func openWriter(cmd *cli.Command) (*xplog.Writer, *errorSink, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	sink := &errorSink{}
	w, err := xplog.NewFromConfig(cfg, xplog.WithOnError(sink.report))
	if err != nil {
		if errors.Is(err, xplog.ErrInvalidConfig) || errors.Is(err, xrotate.ErrInvalidMaxSize) {
			return nil, nil, newUsageError("%v", err)
		}
		return nil, nil, err
	}
	diagLogger(cmd).Debug("writer opened",
		"path", w.Path(), "rotation", cfg.Rotation, "max_size_bytes", cfg.MaxSizeBytes)
	return w, sink, nil
}

// resolveConfig 合并配置文件与命令行选项，命令行优先。
func resolveConfig(cmd *cli.Command) (xplog.Config, error) {
	var cfg xplog.Config
	if path := cmd.String(flagConfig); path != "" {
		loaded, err := xplog.LoadConfig(path)
		if err != nil {
			return xplog.Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
		cfg = loaded
	}

	if cmd.IsSet(flagBase) {
		cfg.BaseName = cmd.String(flagBase)
	}
	if cmd.IsSet(flagInstanceID) {
		cfg.InstanceID = cmd.String(flagInstanceID)
	}
	if cmd.IsSet(flagRotation) {
		cfg.Rotation = cmd.String(flagRotation)
	}
	if cmd.IsSet(flagMaxSize) {
		size := cmd.Int64(flagMaxSize)
		if size <= 0 {
			return xplog.Config{}, newUsageError("--%s 必须为正数，实际为 %d", flagMaxSize, size)
		}
		cfg.MaxSizeBytes = size
	}

	if cfg.BaseName == "" {
		cfg.BaseName = xproc.ProcessName()
	}
	if cfg.BaseName == "" {
		return xplog.Config{}, newUsageError("无法确定日志基础名，请使用 --%s", flagBase)
	}
	return cfg, nil
}

// resolveInstanceID 将 instance_id 配置解析为实际使用的实例 ID。
func resolveInstanceID(id string) string {
	switch trimmed := strings.TrimSpace(id); strings.ToLower(trimmed) {
	case "", xplog.InstanceIDPID:
		return xproc.InstanceID()
	case xplog.InstanceIDUnique:
		return xproc.UniqueInstanceID()
	default:
		return trimmed
	}
}

// diagLogger 返回写入 stderr 的诊断日志器，--verbose 时输出 debug 级别。
func diagLogger(cmd *cli.Command) *slog.Logger {
	level := slog.LevelWarn
	if cmd.Bool(flagVerbose) {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.Root().ErrWriter, &slog.HandlerOptions{Level: level}))
}
