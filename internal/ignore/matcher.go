// Package ignore 实现扫描器的“激进剪枝”层：
// 一份 gitignore 风格的规则表，用于在不启动外部进程的情况下
// 快速跳过依赖缓存、构建产物等重量级目录。
// 精确的忽略裁决由 vcs 包的外部 oracle 兜底，本层只求快。
package ignore

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// defaultPatterns 是内置剪枝目录清单。
// 这些目录从不被打开、从不产生候选路径、也从不提交给 oracle。
var defaultPatterns = []string{
	// 版本控制内部目录
	".git/",
	".svn/",
	".hg/",
	// IDE
	".idea/",
	".vscode/",
	// Python
	"__pycache__/",
	"venv/",
	".venv/",
	"env/",
	// Node / Web
	"node_modules/",
	"bower_components/",
	// 构建产物
	"dist/",
	"build/",
	"target/",
	"bin/",
	"obj/",
}

// rule 是一条解析后的忽略规则。
type rule struct {
	matcher  *regexp.Regexp
	raw      string
	negated  bool
	dirOnly  bool
	anchored bool
}

// Matcher 按 gitignore 语义匹配相对路径，后写规则优先。
type Matcher struct {
	rules []rule
}

// NewMatcher 基于内置清单加用户规则构建匹配器。
// 用户规则排在内置规则之后，因此可以用取反规则覆盖内置剪枝。
func NewMatcher(userRules []string) *Matcher {
	all := make([]string, 0, len(defaultPatterns)+len(userRules))
	all = append(all, defaultPatterns...)
	all = append(all, userRules...)

	rules := make([]rule, 0, len(all))
	for _, line := range all {
		if parsed, ok := parseRule(line); ok {
			rules = append(rules, parsed)
		}
	}

	return &Matcher{rules: rules}
}

// LoadRootGitignore 读取扫描根目录下的 .gitignore 行。
// 文件不存在或不可读时返回 nil，调用方按“无额外规则”处理。
func LoadRootGitignore(root string) []string {
	content, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// ShouldIgnore 判断相对路径是否被本层排除。
// 遍历全部规则，最后一条命中的规则决定结果。
func (m *Matcher) ShouldIgnore(relPath string, isDir bool) bool {
	relPath = normalizePath(relPath)

	ignored := false
	for _, r := range m.rules {
		if r.match(relPath, isDir) {
			ignored = !r.negated
		}
	}
	return ignored
}

// parseRule 解析一条 gitignore 风格规则。
// 空行与注释行返回 false。
func parseRule(line string) (rule, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return rule{}, false
	}

	parsed := rule{}
	if strings.HasPrefix(line, "!") {
		parsed.negated = true
		line = strings.TrimPrefix(line, "!")
	}
	if strings.HasPrefix(line, "/") {
		parsed.anchored = true
		line = strings.TrimPrefix(line, "/")
	}
	if strings.HasSuffix(line, "/") {
		parsed.dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}

	line = normalizePath(line)
	if line == "" {
		return rule{}, false
	}

	parsed.raw = line
	parsed.matcher = regexp.MustCompile("^" + globToRegex(line) + "$")
	return parsed, true
}

// match 判断单条规则是否命中。
func (r rule) match(relPath string, isDir bool) bool {
	if r.dirOnly {
		return r.matchDirectory(relPath, isDir)
	}

	if r.anchored {
		return r.matcher.MatchString(relPath)
	}

	if strings.Contains(r.raw, "/") {
		// 含路径分隔符的非锚定规则可以从任意层级起匹配。
		if r.matcher.MatchString(relPath) {
			return true
		}
		parts := strings.Split(relPath, "/")
		for i := 1; i < len(parts); i++ {
			if r.matcher.MatchString(strings.Join(parts[i:], "/")) {
				return true
			}
		}
		return false
	}

	// 纯名字规则匹配路径中的任意一段。
	if r.matcher.MatchString(filepath.Base(relPath)) {
		return true
	}
	for _, segment := range strings.Split(relPath, "/") {
		if r.matcher.MatchString(segment) {
			return true
		}
	}
	return false
}

// matchDirectory 判断目录规则是否覆盖 relPath。
// 目录规则命中目录本身及其全部子路径；对文件只在其某个父目录段命中时生效。
func (r rule) matchDirectory(relPath string, isDir bool) bool {
	if r.anchored {
		return relPath == r.raw || strings.HasPrefix(relPath, r.raw+"/")
	}

	if relPath == r.raw || strings.HasPrefix(relPath, r.raw+"/") {
		return true
	}

	parts := strings.Split(relPath, "/")
	for i := range parts {
		// 末段只有在 relPath 本身是目录时才允许命中。
		if i == len(parts)-1 && !isDir {
			break
		}
		if r.matcher.MatchString(parts[i]) {
			return true
		}
	}
	return false
}

// globToRegex 把 gitignore 通配符翻译为正则。
// * 不跨目录，** 跨目录，? 匹配单个非分隔符字符。
func globToRegex(pattern string) string {
	var builder strings.Builder
	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]

		if ch == '*' {
			if i+1 < len(pattern) && pattern[i+1] == '*' {
				builder.WriteString(".*")
				i++
				continue
			}
			builder.WriteString("[^/]*")
			continue
		}

		if ch == '?' {
			builder.WriteString("[^/]")
			continue
		}

		if strings.ContainsRune(`.+()|[]{}^$\`, rune(ch)) {
			builder.WriteByte('\\')
		}
		builder.WriteByte(ch)
	}
	return builder.String()
}

// normalizePath 统一使用斜杠并去除前导 ./ 与 /。
func normalizePath(path string) string {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	path = strings.TrimPrefix(path, "/")
	return path
}
