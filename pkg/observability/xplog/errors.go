package xplog

import "errors"

var (
	// ErrEmptyBaseName 基础文件名为空
	ErrEmptyBaseName = errors.New("xplog: base name is required")

	// ErrInvalidInstanceID 实例 ID 为空或包含路径分隔符、空字节
	ErrInvalidInstanceID = errors.New("xplog: invalid instance id")

	// ErrInvalidLevel 级别无法解析，或不能作为最低级别
	ErrInvalidLevel = errors.New("xplog: invalid level")

	// ErrInvalidRotation 未知的轮转模式
	ErrInvalidRotation = errors.New("xplog: invalid rotation mode")

	// ErrInvalidConfig 配置项无效
	ErrInvalidConfig = errors.New("xplog: invalid config")

	// ErrClosed Writer 已关闭
	ErrClosed = errors.New("xplog: writer is closed")
)
