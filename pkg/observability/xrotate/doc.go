// Package xrotate 提供日志文件轮转功能。
//
// Rotator 接口定义了轮转器的核心行为（Write/Close/Rotate），所有实现并发安全。
//
// # 当前实现
//
//   - [NewTruncate]: 超过阈值后截断并重新打开同名文件，旧内容被丢弃，文件名始终不变
//   - [NewLumberjack]: 基于 lumberjack v2 的归档轮转，旧文件重命名为带 UTC 时间戳的备份
//
// 两种实现共用同一组 [Option]。[WithFs] 仅对 NewTruncate 生效，
// lumberjack 直接操作操作系统文件系统。
//
// # 触发条件
//
// NewTruncate 在写入前检查：当前文件大小严格大于阈值时先轮转再写入，
// 因此文件最多超出阈值一次写入的长度。
// NewLumberjack 沿用 lumberjack 的语义：写入后会超出阈值时先轮转，
// 阈值向上取整到 MiB。
//
// # 备份管理
//
// NewLumberjack 不压缩、不清理备份文件，备份的保留由部署环境负责。
//
// # 文件权限
//
// 默认文件权限为 0644，使用 [WithFileMode] 调整。
package xrotate
