package scanner

import (
	"context"
	"io/fs"
	"path/filepath"
)

// collectCandidates 是两阶段收集的第一阶段：
// 自顶向下遍历目录树，对剪枝清单命中的目录直接跳过整棵子树，
// 只保留“后缀已注册且未被剪枝层排除”的文件相对路径。
//
// 顺序保证：filepath.WalkDir 按字典序遍历，因此两次扫描
// 同一棵未变更的树会产出完全相同的路径序列，这也是
// 中断场景下“结果是完整序列前缀”性质的基础。
//
// 返回值 interrupted 表示遍历因 ctx 取消而提前停止；
// 已收集的路径仍然有效。
func (s *Service) collectCandidates(ctx context.Context, root string) (relPaths []string, interrupted bool) {
	_ = filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			interrupted = true
			return fs.SkipAll
		default:
		}

		// 不可读目录与失效链接静默跳过，不影响计数。
		if walkErr != nil {
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		relativePath, relErr := filepath.Rel(root, path)
		if relErr != nil || relativePath == "." {
			return nil
		}
		relativePath = filepath.ToSlash(relativePath)

		if entry.IsDir() {
			// .git 内部文件永远不参与统计，raw 模式也不例外。
			if entry.Name() == ".git" {
				return fs.SkipDir
			}
			if !s.raw && s.matcher.ShouldIgnore(relativePath, true) {
				return fs.SkipDir
			}
			return nil
		}

		if _, known := s.registry.ProfileForFile(path); !known {
			return nil
		}
		if !s.raw && s.matcher.ShouldIgnore(relativePath, false) {
			return nil
		}

		relPaths = append(relPaths, relativePath)
		return nil
	})

	return relPaths, interrupted
}

// filterWithOracle 是第二阶段：把剪枝幸存者一次性交给外部 oracle，
// 得到与版本控制工具完全一致的忽略裁决（含取反与覆盖规则）。
// oracle 降级时返回空集合，等价于“只有剪枝层生效”。
func (s *Service) filterWithOracle(relPaths []string) []string {
	if s.raw || len(relPaths) == 0 {
		return relPaths
	}

	ignored := s.oracle.Resolve(relPaths)
	if len(ignored) == 0 {
		return relPaths
	}

	kept := relPaths[:0]
	for _, path := range relPaths {
		if !ignored[path] {
			kept = append(kept, path)
		}
	}
	return kept
}
