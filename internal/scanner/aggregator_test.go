package scanner

import (
	"sync"
	"testing"
	"time"

	"locr/internal/model"
)

// TestAggregatorFirstSeenOrder 验证行按语言首见顺序排列。
func TestAggregatorFirstSeenOrder(t *testing.T) {
	aggregator := NewAggregator()
	aggregator.Record("Python", "script", model.LineMetrics{Code: 1})
	aggregator.Record("Go", "systems", model.LineMetrics{Code: 2})
	aggregator.Record("Python", "script", model.LineMetrics{Code: 3})

	result := aggregator.Snapshot("/tmp/x", false, false, time.Second)

	if len(result.Languages) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(result.Languages))
	}
	if result.Languages[0].Language != "Python" || result.Languages[1].Language != "Go" {
		t.Fatalf("unexpected row order: %+v", result.Languages)
	}
	if result.Languages[0].Files != 2 || result.Languages[0].Code != 4 {
		t.Fatalf("unexpected Python row: %+v", result.Languages[0])
	}
}

// TestAggregatorTotals 验证总计行等于各语言行之和。
func TestAggregatorTotals(t *testing.T) {
	aggregator := NewAggregator()
	aggregator.Record("Go", "systems", model.LineMetrics{Blank: 1, Comment: 2, Code: 3})
	aggregator.Record("YAML", "data", model.LineMetrics{Blank: 4, Comment: 5, Code: 6})

	result := aggregator.Snapshot("/tmp/x", false, false, 0)

	if result.Total.Files != 2 {
		t.Fatalf("expected 2 total files, got %d", result.Total.Files)
	}
	if result.Total.Blank != 5 || result.Total.Comment != 7 || result.Total.Code != 9 {
		t.Fatalf("unexpected totals: %+v", result.Total)
	}
	if result.Total.Lines() != 21 {
		t.Fatalf("expected 21 total lines, got %d", result.Total.Lines())
	}
}

// TestSnapshotImmutableAfterEmit 验证快照产出后不再受后续 Record 影响。
func TestSnapshotImmutableAfterEmit(t *testing.T) {
	aggregator := NewAggregator()
	aggregator.Record("Go", "systems", model.LineMetrics{Code: 1})

	snapshot := aggregator.Snapshot("/tmp/x", false, true, 0)
	aggregator.Record("Go", "systems", model.LineMetrics{Code: 100})
	aggregator.Record("Rust", "systems", model.LineMetrics{Code: 100})

	if snapshot.Total.Code != 1 || len(snapshot.Languages) != 1 {
		t.Fatalf("emitted snapshot was mutated: %+v", snapshot)
	}
	if !snapshot.Partial {
		t.Fatalf("expected partial flag to be carried")
	}
}

// TestSnapshotCarriesScanMetadata 验证快照携带 ScanID 与路径、耗时信息。
func TestSnapshotCarriesScanMetadata(t *testing.T) {
	aggregator := NewAggregator()

	first := aggregator.Snapshot("/repo", true, false, 42*time.Millisecond)
	second := aggregator.Snapshot("/repo", true, false, 42*time.Millisecond)

	if first.ScanID == "" || first.ScanID == second.ScanID {
		t.Fatalf("expected distinct non-empty scan ids, got %q and %q", first.ScanID, second.ScanID)
	}
	if first.ScannedPath != "/repo" || !first.Raw || first.Elapsed != 42*time.Millisecond {
		t.Fatalf("unexpected metadata: %+v", first)
	}
}

// TestSnapshotConcurrentWithRecord 验证 Snapshot 可以与进行中的 Record 并发调用。
// 供未来并行分类扩展使用的边界，配合 -race 验证。
func TestSnapshotConcurrentWithRecord(t *testing.T) {
	aggregator := NewAggregator()

	var group sync.WaitGroup
	group.Add(2)

	go func() {
		defer group.Done()
		for i := 0; i < 500; i++ {
			aggregator.Record("Go", "systems", model.LineMetrics{Code: 1})
		}
	}()
	go func() {
		defer group.Done()
		for i := 0; i < 500; i++ {
			_ = aggregator.Snapshot("/tmp/x", false, false, 0)
		}
	}()

	group.Wait()

	final := aggregator.Snapshot("/tmp/x", false, false, 0)
	if final.Total.Code != 500 {
		t.Fatalf("expected 500 recorded lines, got %d", final.Total.Code)
	}
}
