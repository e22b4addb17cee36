// xplogctl 是 xplog 进程级滚动日志的命令行工具。
//
// 用法:
//
//	xplogctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-b, --base         日志文件基础名，可包含目录（默认: 配置文件 base_name，其次为当前进程名）
//	-i, --instance-id  实例 ID: pid（默认）| unique | 任意字面值
//	-c, --config       YAML/JSON 配置文件，读取其中的 xplog 键
//	    --rotation     轮转模式: truncate（默认）| archive
//	    --max-size     轮转阈值（字节）
//	-v, --verbose      输出诊断日志到 stderr
//
// 命令行选项覆盖配置文件中的同名配置。
//
// 命令:
//
//	write [--level L] <message...>   追加一行日志
//	path                             打印活动日志文件路径（不创建文件）
//	levels                           列出全部日志级别
//	rotate                           开始新的活动文件（truncate 清空，archive 归档原文件）
//
// 退出码:
//
//	0: 命令执行成功
//	1: 运行时错误（文件无法打开、写入失败等）
//	2: 参数错误（未知级别、无效配置、缺少消息等）
//
// 示例:
//
//	xplogctl -b /var/log/unit/engine write "cache warmed"
//	xplogctl -b /tmp/app -i worker-1 write --level error "connection failed"
//	xplogctl -c /etc/app/log.yaml --rotation archive rotate
//	xplogctl -b /tmp/app -i unique path
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "xplogctl",
		Usage:     "xplog 进程级滚动日志命令行工具",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagBase,
				Aliases: []string{"b"},
				Usage:   "日志文件基础名（可包含目录）",
				Sources: cli.EnvVars("XPLOG_BASE"),
			},
			&cli.StringFlag{
				Name:    flagInstanceID,
				Aliases: []string{"i"},
				Usage:   "实例 ID: pid | unique | 任意字面值",
			},
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "YAML/JSON 配置文件路径",
				Sources: cli.EnvVars("XPLOG_CONFIG"),
			},
			&cli.StringFlag{
				Name:  flagRotation,
				Usage: "轮转模式: truncate | archive",
			},
			&cli.Int64Flag{
				Name:  flagMaxSize,
				Usage: "轮转阈值（字节）",
			},
			&cli.BoolFlag{
				Name:    flagVerbose,
				Aliases: []string{"v"},
				Usage:   "输出诊断日志",
			},
		},
		Commands: createCommands(),
		// 禁止 urfave/cli 直接调用 os.Exit，由 run() 统一映射退出码。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(stderr, err)
			}
		},
	}
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runArgs(ctx, os.Args, os.Stdout, os.Stderr)
}

// runArgs 执行命令并返回退出码。
func runArgs(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := createApp(stdout, stderr)

	if err := app.Run(ctx, args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		if isCLIUsageError(err) {
			fmt.Fprintf(stderr, "参数错误: %v\n", err)
			return 2
		}
		fmt.Fprintf(stderr, "错误: %v\n", err)
		return 1
	}
	return 0
}
