package report

import "locr/internal/languages"

// ANSI 控制序列。输出层之外的代码不允许触碰这些常量。
const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"

	ansiGrey    = "\033[90m"
	ansiRed     = "\033[91m"
	ansiGreen   = "\033[92m"
	ansiYellow  = "\033[93m"
	ansiBlue    = "\033[94m"
	ansiMagenta = "\033[95m"
	ansiCyan    = "\033[96m"
	ansiWhite   = "\033[97m"
)

// categoryColors 把语言画像的展示分类映射到行颜色。
var categoryColors = map[string]string{
	languages.CategoryScript:  ansiGreen,
	languages.CategoryWeb:     ansiBlue,
	languages.CategorySystems: ansiCyan,
	languages.CategoryData:    ansiGrey,
	languages.CategoryMarkup:  ansiWhite,
	languages.CategoryQuery:   ansiYellow,
}

// style 在启用彩色时为文本包上颜色序列。
func style(text string, color string, enabled bool) string {
	if !enabled {
		return text
	}
	return color + text + ansiReset
}

// colorForCategory 返回分类对应的颜色，未知分类退回白色。
func colorForCategory(category string) string {
	if color, ok := categoryColors[category]; ok {
		return color
	}
	return ansiWhite
}
