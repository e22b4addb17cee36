// Package xconf 提供最小化的配置文件加载，基于 koanf 实现。
//
// xconf 只负责把 YAML/JSON 数据加载为 koanf 实例并反序列化到结构体，
// 不负责必选字段校验和默认值注入，这些由使用方（如 xplog.Config）完成。
//
// # 支持的格式
//
//   - YAML（默认，推荐）：.yaml, .yml
//   - JSON：.json
//
// # Unmarshal
//
// Unmarshal 使用 mapstructure 进行反序列化，允许弱类型转换
// （例如字符串 "1048576" 可自动转为 int64）。
// 结构体字段通过 koanf 标签映射，可用 [WithTag] 修改。
package xconf
