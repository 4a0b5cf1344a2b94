package scanner

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"locr/internal/model"
)

// Aggregator 按语言累计分类结果。
//
// Record/Snapshot 是它对外的全部契约：当前扫描是单 worker 顺序执行，
// 但聚合器仍然用互斥锁守住这一边界，未来引入并行分类时
// 只需要在这里做同步，Walker 和分类器都不用动。
type Aggregator struct {
	mu    sync.Mutex
	rows  map[string]*model.LanguageMetrics
	order []string
}

// NewAggregator 创建空聚合器。
func NewAggregator() *Aggregator {
	return &Aggregator{
		rows: make(map[string]*model.LanguageMetrics),
	}
}

// Record 把一个文件的分类结果整体记入对应语言行。
// 整个文件的计数在锁内一次性落账：取消只能发生在文件之间，
// 不可能出现“半个文件”的行。行按语言名懒创建，保留首见顺序。
func (a *Aggregator) Record(language string, category string, metrics model.LineMetrics) {
	a.mu.Lock()
	defer a.mu.Unlock()

	row, exists := a.rows[language]
	if !exists {
		row = &model.LanguageMetrics{
			Language: language,
			Category: category,
		}
		a.rows[language] = row
		a.order = append(a.order, language)
	}

	row.Files++
	row.LineMetrics.Add(metrics)
}

// Snapshot 产出当前状态的不可变副本。
// 可以在任意时刻调用，包括与进行中的 Record 并发；
// 返回后聚合器不再持有副本的任何引用。
func (a *Aggregator) Snapshot(scannedPath string, raw bool, partial bool, elapsed time.Duration) model.ScanResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	result := model.ScanResult{
		ScanID:      uuid.NewString(),
		ScannedPath: scannedPath,
		Raw:         raw,
		Partial:     partial,
		Elapsed:     elapsed,
		Languages:   make([]model.LanguageMetrics, 0, len(a.order)),
	}

	for _, language := range a.order {
		row := *a.rows[language]
		result.Languages = append(result.Languages, row)
		result.Total.Files += row.Files
		result.Total.LineMetrics.Add(row.LineMetrics)
	}

	return result
}
