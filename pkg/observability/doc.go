// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xplog: 进程级滚动日志写入器，文件名为 "<base>_<pid>.log"
//   - xrotate: 日志文件轮转，截断重开或归档备份
//
// 设计原则：
//   - 日志写入器本身就是日志出口，内部失败通过回调和指标上报
//   - 指标遵循 OpenTelemetry 语义，未配置 MeterProvider 时不产生开销
package observability
