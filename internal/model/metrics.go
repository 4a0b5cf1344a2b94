// Package model 定义 locr 的核心数据模型。
// 这些结构会被扫描器、输出层和命令层共同使用。
package model

import "time"

// LineMetrics 表示一组行级统计值。
//
// 注意：
// - 三个分类互斥：每个物理行恰好计入 blank/comment/code 之一
// - 因此 Blank + Comment + Code 恒等于读取到的物理行数
type LineMetrics struct {
	Blank   int64 `json:"blank"`
	Comment int64 `json:"comment"`
	Code    int64 `json:"code"`
}

// Add 将另一个统计结果叠加到当前对象。
func (m *LineMetrics) Add(other LineMetrics) {
	m.Blank += other.Blank
	m.Comment += other.Comment
	m.Code += other.Code
}

// Lines 返回该统计值覆盖的物理行数。
func (m LineMetrics) Lines() int64 {
	return m.Blank + m.Comment + m.Code
}

// LanguageMetrics 表示某个语言的聚合结果，对应报表中的一行。
// Category 仅供输出层选择展示颜色使用，不参与任何统计。
type LanguageMetrics struct {
	Language string `json:"language"`
	Category string `json:"category"`
	Files    int64  `json:"files"`
	LineMetrics
}

// TotalMetrics 表示项目级总计信息。
// 在 LineMetrics 基础上额外增加 Files 字段，
// 用于表达“本次扫描统计到了多少个有效源码文件”。
type TotalMetrics struct {
	Files int64 `json:"files"`
	LineMetrics
}

// AddFileMetrics 累加一个文件的统计值到项目总计中。
func (m *TotalMetrics) AddFileMetrics(other LineMetrics) {
	m.Files++
	m.LineMetrics.Add(other)
}

// ScanResult 是一次扫描的完整快照。
//
// 快照在产出后即视为不可变：聚合器在 Snapshot 时做深拷贝，
// 之后的任何 Record 都不会影响已交给输出层的对象。
// Partial 为 true 表示扫描被中断、结果只覆盖遍历序列的一个前缀。
type ScanResult struct {
	ScanID      string            `json:"scan_id"`
	ScannedPath string            `json:"scanned_path"`
	Raw         bool              `json:"raw"`
	Partial     bool              `json:"partial"`
	Elapsed     time.Duration     `json:"elapsed_ns"`
	Languages   []LanguageMetrics `json:"languages"`
	Total       TotalMetrics      `json:"total"`
}
