// Package xplog 提供进程级的滚动日志写入器。
//
// [Writer] 把带级别的格式化消息追加到 "<base>_<instance-id>.log"，
// 每行格式为：
//
//	MM/DD/YY HH:MM:SS [level]: message
//
// 例如：
//
//	01/15/24 09:32:07 [error]: connection failed: timeout after 5 attempts
//
// 时间戳始终为 UTC。实例 ID 默认为进程 ID，可通过 [WithInstanceID] 注入，
// 用于隔离使用同一基础名的多个进程。
//
// # 级别
//
// 六个级别：info、debug、warning、error 以及两个由业务自定义含义的
// [LevelCustom1]、[LevelCustom2]。自定义级别和任何未知值都显示为 "unknown"。
// 默认不做级别过滤，[WithMinLevel] 可按 debug < info < warning < error 过滤标准级别。
//
// # 轮转
//
// 文件大小严格超过阈值（默认 1 MiB）后，下一次写入前轮转：
//
//   - [RotationTruncate]（默认）：截断并重新打开同名文件，之前的内容被丢弃
//   - [RotationArchive]：旧文件重命名为带 UTC 时间戳的备份，不压缩、不清理
//
// # 并发与错误
//
// 每个 Writer 持有一把互斥锁，格式化、轮转和写入在同一临界区完成，
// 行的顺序即调用获得锁的顺序，每行只调用一次 Write，不会与其他行交错。
//
// 构造失败返回错误；日志调用本身没有返回值，写入失败通过 [WithOnError] 回调
// 和 xplog.errors.total 指标上报，不会中断调用方。
package xplog
