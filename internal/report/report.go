// Package report 提供 locr 的输出能力。
// 本包只消费扫描快照（model.ScanResult），对扫描过程一无所知；
// 支持彩色表格、JSON 以及文件导出（文件里永远是无色文本）。
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"locr/internal/model"
)

const reportWidth = 75

// PrintTable 把快照渲染成固定宽度表格写入 writer。
func PrintTable(writer io.Writer, result model.ScanResult, useColor bool) error {
	for _, line := range renderLines(result, useColor) {
		if _, err := fmt.Fprintln(writer, line); err != nil {
			return err
		}
	}
	return nil
}

// renderLines 生成表格的全部行。
// 行按 code 数降序排列（与聚合器的首见顺序无关，纯展示口径）。
func renderLines(result model.ScanResult, useColor bool) []string {
	var lines []string

	if result.Partial {
		lines = append(lines, "")
		lines = append(lines, style("⚠  Scan interrupted. Showing partial results...", ansiYellow, useColor))
	}

	if len(result.Languages) == 0 {
		return append(lines, "No code files found.")
	}

	rows := append([]model.LanguageMetrics(nil), result.Languages...)
	sort.SliceStable(rows, func(i int, j int) bool {
		return rows[i].Code > rows[j].Code
	})

	thickSep := strings.Repeat("=", reportWidth)
	thinSep := strings.Repeat("-", reportWidth)

	lines = append(lines, "")
	lines = append(lines, style(thickSep, ansiWhite, useColor))
	lines = append(lines, style(
		fmt.Sprintf("%-22s %10s %12s %12s %12s", "Language", "Files", "Blank", "Comment", "Code"),
		ansiBold, useColor,
	))
	lines = append(lines, style(thinSep, ansiWhite, useColor))

	for _, row := range rows {
		text := fmt.Sprintf("%-22s %10d %12d %12d %12d",
			row.Language, row.Files, row.Blank, row.Comment, row.Code)
		lines = append(lines, style(text, colorForCategory(row.Category), useColor))
	}

	lines = append(lines, style(thinSep, ansiWhite, useColor))
	lines = append(lines, style(
		fmt.Sprintf("%-22s %10d %12d %12d %12d",
			"TOTAL", result.Total.Files, result.Total.Blank, result.Total.Comment, result.Total.Code),
		ansiBold, useColor,
	))
	lines = append(lines, style(thickSep, ansiWhite, useColor))

	lines = append(lines, style(
		fmt.Sprintf("Processed %d files in %.3f seconds.", result.Total.Files, result.Elapsed.Seconds()),
		ansiCyan, useColor,
	))

	return lines
}

// PrintJSON 把扫描结果按易读 JSON 输出到任意 writer。
func PrintJSON(writer io.Writer, result model.ScanResult) error {
	content, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := writer.Write(content); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteTextFile 把无色表格写入指定文件。
// 写入失败只代表导出这一步失败，快照本身仍然有效可再输出。
func WriteTextFile(path string, result model.ScanResult) error {
	content := strings.Join(renderLines(result, false), "\n") + "\n"
	if err := writeFile(path, []byte(content)); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}

// WriteJSONFile 将 JSON 结果导出到指定路径。
func WriteJSONFile(path string, result model.ScanResult) error {
	content, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	if err := writeFile(path, content); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}

// AutoOutputName 计算 -o 未带文件名时的默认导出路径：
// 扫描目录内的 <目录名>_locr.txt。
func AutoOutputName(scannedPath string) string {
	folder := filepath.Base(filepath.Clean(scannedPath))
	if folder == "." || folder == string(filepath.Separator) || folder == "" {
		folder = "root"
	}
	return filepath.Join(scannedPath, folder+"_locr.txt")
}

// writeFile 落盘，目录不存在时自动创建。
func writeFile(path string, content []byte) error {
	directory := filepath.Dir(path)
	if directory != "." && directory != "" {
		if err := os.MkdirAll(directory, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	return os.WriteFile(path, content, 0o644)
}
