package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"locr/internal/config"
	"locr/internal/ignore"
	"locr/internal/languages"
	"locr/internal/model"
	"locr/internal/report"
	"locr/internal/scanner"
	"locr/internal/vcs"

	"github.com/spf13/cobra"
)

// scanOptions 存放 scan 命令的可配置参数。
type scanOptions struct {
	color  bool
	raw    bool
	format string
	out    string
}

// autoOutput 是 -o 不带文件名时的哨兵值，表示使用默认导出路径。
const autoOutput = "auto"

// newScanCmd 创建 scan 子命令。
// 示例：
//
//	locr scan
//	locr scan ./project --color
//	locr scan ./project --raw
//	locr scan ./project -o report.txt
//	locr scan ./project --format json
func newScanCmd(registry *languages.Registry) *cobra.Command {
	options := scanOptions{
		format: "table",
	}

	scanCmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "扫描目录或文件并输出行数统计",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			targetPath := "."
			if len(args) == 1 {
				targetPath = args[0]
			}
			return runScan(cmd, registry, targetPath, options)
		},
	}

	scanCmd.Flags().BoolVarP(&options.color, "color", "c", false, "启用彩色表格输出")
	scanCmd.Flags().BoolVar(&options.raw, "raw", false, "raw 模式：旁路全部忽略规则")
	scanCmd.Flags().StringVar(&options.format, "format", options.format, "输出格式: table 或 json")
	scanCmd.Flags().StringVarP(&options.out, "out", "o", "", "导出报表到文件；不带文件名时写入 <目录名>_locr.txt")
	scanCmd.Flags().Lookup("out").NoOptDefVal = autoOutput

	return scanCmd
}

// runScan 执行完整的扫描流程：配置合并、信号绑定、扫描、输出。
func runScan(cmd *cobra.Command, registry *languages.Registry, targetPath string, options scanOptions) error {
	absoluteTarget, err := filepath.Abs(targetPath)
	if err != nil {
		return fmt.Errorf("resolve absolute path: %w", err)
	}

	info, err := os.Stat(absoluteTarget)
	if err != nil {
		return fmt.Errorf("stat path: %w", err)
	}

	configRoot := absoluteTarget
	if !info.IsDir() {
		configRoot = filepath.Dir(absoluteTarget)
	}

	cfg, err := config.Load(configRoot)
	if err != nil {
		return err
	}
	mergeOptions(cmd, cfg, &options)

	format := strings.ToLower(strings.TrimSpace(options.format))
	if format != "table" && format != "json" {
		return errors.New("unsupported format, allowed values: table, json")
	}

	if cfg.LanguagesFile != "" {
		overridesPath := cfg.LanguagesFile
		if !filepath.IsAbs(overridesPath) {
			overridesPath = filepath.Join(configRoot, overridesPath)
		}
		profiles, err := languages.LoadOverrides(overridesPath)
		if err != nil {
			return err
		}
		registry.ApplyOverrides(profiles)
	}

	matcher := ignore.NewMatcher(append(ignore.LoadRootGitignore(configRoot), cfg.Ignore...))

	var oracle vcs.Oracle = vcs.NopOracle{}
	if !options.raw {
		oracle = vcs.NewOracle(configRoot)
	}

	// 第一次中断后释放注册，让第二次中断走平台默认处理（立即终止）。
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		stop()
	}()

	progress := newSpinner(absoluteTarget, options.out == "")
	service := scanner.NewService(registry, matcher, oracle, options.raw)
	service.OnFile(func(string) { progress.Tick() })

	result, err := service.ScanPath(ctx, absoluteTarget)
	progress.Clear()
	if err != nil {
		return err
	}

	return emit(cmd, result, format, options)
}

// mergeOptions 把配置文件取值合并进命令行参数。
// 只有用户没有显式传 flag 时，配置文件的取值才生效。
func mergeOptions(cmd *cobra.Command, cfg *config.Config, options *scanOptions) {
	if !cmd.Flags().Changed("color") {
		options.color = cfg.Color
	}
	if !cmd.Flags().Changed("raw") {
		options.raw = cfg.Raw
	}
	if !cmd.Flags().Changed("format") && cfg.Format != "" {
		options.format = cfg.Format
	}
	if !cmd.Flags().Changed("out") && cfg.Output != "" {
		options.out = cfg.Output
	}
}

// emit 按格式与导出目标输出快照。
// 导出失败只算导出这一步失败：快照会退回 stdout 再展示一次，
// 已经算好的结果不作废。
func emit(cmd *cobra.Command, result model.ScanResult, format string, options scanOptions) error {
	outPath := options.out
	if outPath == autoOutput {
		outPath = report.AutoOutputName(result.ScannedPath)
	}

	if outPath != "" {
		var writeErr error
		if format == "json" {
			writeErr = report.WriteJSONFile(outPath, result)
		} else {
			writeErr = report.WriteTextFile(outPath, result)
		}

		if writeErr != nil {
			// 快照仍然有效，退回无色表格输出后再报告导出失败。
			_ = report.PrintTable(cmd.OutOrStdout(), result, false)
			return writeErr
		}

		cmd.Printf("Output written to: %s\n", outPath)
		return nil
	}

	if format == "json" {
		if err := report.PrintJSON(cmd.OutOrStdout(), result); err != nil {
			return err
		}
		cmd.Println()
		return nil
	}

	useColor := options.color && isTerminal(os.Stdout)
	return report.PrintTable(cmd.OutOrStdout(), result, useColor)
}
