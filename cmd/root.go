// Package cmd 提供 locr 的命令行入口与子命令编排。
package cmd

import (
	"locr/internal/languages"

	"github.com/spf13/cobra"
)

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	registry := languages.NewRegistry()
	rootCmd := newRootCmd(version, registry)
	return rootCmd.Execute()
}

// newRootCmd 创建根命令并注册全部子命令。
func newRootCmd(version string, registry *languages.Registry) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "locr",
		Short: "按语言统计目录树的代码、注释与空白行数",
		Long: "locr 是一个语言感知的代码行统计工具：\n" +
			"遍历目录树并把每一行归类为 blank/comment/code，\n" +
			"默认遵循 .gitignore 规则并激进剪枝重量级目录（如 node_modules），\n" +
			"中断扫描（Ctrl-C）时输出已完成部分的一致快照。",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newLanguageCmd(registry))
	rootCmd.AddCommand(newScanCmd(registry))

	return rootCmd
}
