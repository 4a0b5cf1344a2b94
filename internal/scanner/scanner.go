// Package scanner 提供 locr 的扫描编排能力。
// 该层负责目录收集、忽略裁决、顺序分类和结果聚合，
// 不负责注释语法的判定细节。
package scanner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"locr/internal/ignore"
	"locr/internal/languages"
	"locr/internal/model"
	"locr/internal/vcs"
)

// Service 是扫描服务对象。
//
// 当前作用域是单 worker 协作式扫描：一次顺序遍历、同一时刻
// 最多打开一个文件、分类与聚合在同一控制流里交替执行。
// 取消是协作式且非抢占的：正在读取的文件会读完，
// 只有下一个文件会被放弃。
type Service struct {
	registry *languages.Registry
	matcher  *ignore.Matcher
	oracle   vcs.Oracle
	raw      bool
	progress func(relPath string)
}

// NewService 创建扫描服务。
// raw 为 true 时剪枝层与 oracle 全部旁路，只有 .git 本身仍被跳过。
func NewService(registry *languages.Registry, matcher *ignore.Matcher, oracle vcs.Oracle, raw bool) *Service {
	return &Service{
		registry: registry,
		matcher:  matcher,
		oracle:   oracle,
		raw:      raw,
	}
}

// OnFile 注册每处理一个文件时的回调（进度条挂载点）。
// 回调在分类开始前、同一控制流内触发。
func (s *Service) OnFile(callback func(relPath string)) {
	s.progress = callback
}

// ScanPath 扫描目录或单文件。
//
// ctx 取消不是错误：扫描在文件边界停下，返回 Partial 为 true 的
// 快照，已落账的行保持完整一致。
func (s *Service) ScanPath(ctx context.Context, targetPath string) (model.ScanResult, error) {
	startedAt := time.Now()

	trimmedPath := strings.TrimSpace(targetPath)
	if trimmedPath == "" {
		return model.ScanResult{}, errors.New("scan path is empty")
	}

	absoluteTarget, err := filepath.Abs(trimmedPath)
	if err != nil {
		return model.ScanResult{}, fmt.Errorf("resolve absolute path: %w", err)
	}

	info, err := os.Stat(absoluteTarget)
	if err != nil {
		return model.ScanResult{}, fmt.Errorf("stat path: %w", err)
	}

	aggregator := NewAggregator()

	if !info.IsDir() {
		if err := s.scanSingleFile(absoluteTarget, aggregator); err != nil {
			return model.ScanResult{}, err
		}
		return aggregator.Snapshot(absoluteTarget, s.raw, false, time.Since(startedAt)), nil
	}

	relPaths, interrupted := s.collectCandidates(ctx, absoluteTarget)
	relPaths = s.filterWithOracle(relPaths)

	for _, relPath := range relPaths {
		// 取消检查只发生在文件之间，保证行级不变量。
		if ctx.Err() != nil {
			interrupted = true
			break
		}

		if s.progress != nil {
			s.progress(relPath)
		}

		s.classifyInto(absoluteTarget, relPath, aggregator)
	}

	return aggregator.Snapshot(absoluteTarget, s.raw, interrupted, time.Since(startedAt)), nil
}

// scanSingleFile 处理用户直接给出单文件路径的情况。
// 后缀未注册在该模式下是错误，目录扫描时则只是静默跳过。
func (s *Service) scanSingleFile(absolutePath string, aggregator *Aggregator) error {
	profile, known := s.registry.ProfileForFile(absolutePath)
	if !known {
		return fmt.Errorf("unsupported file extension: %s", filepath.Ext(absolutePath))
	}

	file, err := os.Open(absolutePath)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	metrics, err := profile.Classify(file)
	if err != nil {
		return fmt.Errorf("classify %s: %w", filepath.Base(absolutePath), err)
	}

	aggregator.Record(profile.Name, profile.Category, metrics)
	return nil
}

// classifyInto 分类单个文件并落账。
// 打开失败、读取失败或内容无法解码时整体跳过该文件：
// 不贡献任何计数，也不中断扫描。
func (s *Service) classifyInto(root string, relPath string, aggregator *Aggregator) {
	profile, known := s.registry.ProfileForFile(relPath)
	if !known {
		return
	}

	file, err := os.Open(filepath.Join(root, filepath.FromSlash(relPath)))
	if err != nil {
		return
	}
	defer file.Close()

	metrics, err := profile.Classify(file)
	if err != nil {
		return
	}

	aggregator.Record(profile.Name, profile.Category, metrics)
}
