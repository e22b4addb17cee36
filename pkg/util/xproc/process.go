package xproc

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// osExecutable 是 os.Executable 的包级变量，支持测试中 mock。
var osExecutable = os.Executable

// newUUID 是 uuid.NewString 的包级变量，支持测试中 mock。
var newUUID = uuid.NewString

// uniqueSuffixLen 随机后缀长度（UUID 前 8 个十六进制字符）
const uniqueSuffixLen = 8

var (
	processNameOnce  sync.Once
	processNameValue string
)

// ProcessID 返回当前进程 ID。
func ProcessID() int {
	return os.Getpid()
}

// InstanceID 返回默认的实例 ID，即当前进程 ID 的十进制字符串。
func InstanceID() string {
	return strconv.Itoa(ProcessID())
}

// UniqueInstanceID 返回 "<pid>-<8 位随机十六进制>" 形式的实例 ID。
//
// 容器内的进程 PID 往往都是 1，多个容器挂载同一日志目录时仅凭 PID 无法区分。
// 每次调用都会生成新的后缀，调用方应在进程启动时获取一次并复用。
func UniqueInstanceID() string {
	id := newUUID()
	if len(id) > uniqueSuffixLen {
		id = id[:uniqueSuffixLen]
	}
	return InstanceID() + "-" + id
}

// baseName 提取路径的基础文件名。
// 对 [filepath.Base] 返回的特殊值（"."、".."、路径分隔符）返回空字符串。
func baseName(path string) string {
	name := filepath.Base(path)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return ""
	}
	return name
}

func resolveProcessName() string {
	if exe, err := osExecutable(); err == nil && exe != "" {
		if name := baseName(exe); name != "" {
			return name
		}
	}
	if len(os.Args) == 0 || os.Args[0] == "" {
		return ""
	}
	return baseName(os.Args[0])
}

// ProcessName 返回当前进程名称（不含路径），结果在首次调用时缓存。
//
// 优先使用 [os.Executable]，失败时回退到 os.Args[0]。
// 所有来源均无效时返回空字符串，调用方可据此兜底。
func ProcessName() string {
	processNameOnce.Do(func() {
		processNameValue = resolveProcessName()
	})
	return processNameValue
}
