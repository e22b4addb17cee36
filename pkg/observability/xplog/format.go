package xplog

import (
	"fmt"
	"time"
)

// TimeLayout 时间戳格式：MM/DD/YY HH:MM:SS（24 小时制）
const TimeLayout = "01/02/06 15:04:05"

// appendLine 把一行日志追加到 dst
//
//	<timestamp> [<level>]: <message>\n
//
// 消息由 fmt 渲染，长度不受限制；参数与格式不匹配时 fmt 会在行内
// 标注（如 "%!d(string=x)"），不会失败。
func appendLine(dst []byte, t time.Time, level Level, format string, args ...any) []byte {
	dst = t.UTC().AppendFormat(dst, TimeLayout)
	dst = append(dst, " ["...)
	dst = append(dst, level.String()...)
	dst = append(dst, "]: "...)
	dst = fmt.Appendf(dst, format, args...)
	return append(dst, '\n')
}
