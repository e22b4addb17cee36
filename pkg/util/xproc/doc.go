// Package xproc 提供当前进程的身份信息。
//
// 日志文件名以实例 ID 作为后缀，用于隔离同一目录下使用相同基础名的多个进程：
//
//   - [InstanceID]: 进程 ID 的十进制字符串，默认的实例 ID
//   - [UniqueInstanceID]: 进程 ID 加随机后缀，适用于容器中 PID 普遍为 1 的场景
//   - [ProcessName]: 可执行文件名，常用作默认的日志基础名
package xproc
