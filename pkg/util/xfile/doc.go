// Package xfile 提供日志文件路径相关的文件系统工具。
//
//   - [SanitizePath]: 规范化文件路径，拒绝空路径、空字节、目录路径和相对路径穿越
//   - [EnsureDir]: 在给定的 [afero.Fs] 上创建文件的父目录
//
// 目录操作基于 afero，生产环境传入 afero.NewOsFs()，测试中可使用 afero.NewMemMapFs()。
//
// # 错误处理
//
// 预定义错误变量支持 [errors.Is] 判断：
//
//	_, err := xfile.SanitizePath("../etc/app.log")
//	if errors.Is(err, xfile.ErrPathTraversal) {
//	    // 处理路径穿越
//	}
package xfile
