// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xfile: 路径校验与父目录创建，基于 afero 文件系统抽象
//   - xproc: 进程信息查询，PID、进程名称和实例 ID
package util
