// Package languages 维护“文件后缀 → 语言画像”的静态映射，
// 并提供基于画像的启发式行分类器。
// 画像内容（行注释标记、块注释定界符、展示分类）是纯数据，
// 分类器本身不感知任何具体语言。
package languages

// BlockDelimiter 表示一对块注释定界符。
type BlockDelimiter struct {
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
}

// Profile 是单个语言的画像。
//
// 约束说明：
// - 同一个后缀只会映射到一个画像
// - Category 仅供输出层配色使用，对统计无影响
// - LineComments/BlockComments 保持声明顺序，匹配时按序尝试
type Profile struct {
	Name          string           `yaml:"name"`
	Category      string           `yaml:"category"`
	Extensions    []string         `yaml:"extensions"`
	LineComments  []string         `yaml:"line_comments"`
	BlockComments []BlockDelimiter `yaml:"block_comments"`
}

// 展示分类常量。输出层据此选择颜色，新增分类需要同步配色表。
const (
	CategoryScript  = "script"
	CategoryWeb     = "web"
	CategorySystems = "systems"
	CategoryData    = "data"
	CategoryMarkup  = "markup"
	CategoryQuery   = "query"
)

// builtinProfiles 是内置语言表。
// 后缀一律小写；复合后缀（如 .d.ts）优先于普通后缀被解析。
func builtinProfiles() []Profile {
	return []Profile{
		{
			Name:          "Python",
			Category:      CategoryScript,
			Extensions:    []string{".py"},
			LineComments:  []string{"#"},
			BlockComments: []BlockDelimiter{{Open: `"""`, Close: `"""`}},
		},
		{
			Name:          "HTML",
			Category:      CategoryMarkup,
			Extensions:    []string{".html"},
			BlockComments: []BlockDelimiter{{Open: "<!--", Close: "-->"}},
		},
		{
			Name:          "Vue",
			Category:      CategoryWeb,
			Extensions:    []string{".vue"},
			LineComments:  []string{"//"},
			BlockComments: []BlockDelimiter{{Open: "<!--", Close: "-->"}, {Open: "/*", Close: "*/"}},
		},
		{
			Name:          "Svelte",
			Category:      CategoryWeb,
			Extensions:    []string{".svelte"},
			LineComments:  []string{"//"},
			BlockComments: []BlockDelimiter{{Open: "<!--", Close: "-->"}, {Open: "/*", Close: "*/"}},
		},
		{
			Name:          "CSS",
			Category:      CategoryWeb,
			Extensions:    []string{".css"},
			BlockComments: []BlockDelimiter{{Open: "/*", Close: "*/"}},
		},
		{
			Name:          "Sass",
			Category:      CategoryWeb,
			Extensions:    []string{".scss"},
			LineComments:  []string{"//"},
			BlockComments: []BlockDelimiter{{Open: "/*", Close: "*/"}},
		},
		{
			Name:          "JavaScript",
			Category:      CategoryWeb,
			Extensions:    []string{".js"},
			LineComments:  []string{"//"},
			BlockComments: []BlockDelimiter{{Open: "/*", Close: "*/"}},
		},
		{
			Name:          "JavaScript JSX",
			Category:      CategoryWeb,
			Extensions:    []string{".jsx"},
			LineComments:  []string{"//"},
			BlockComments: []BlockDelimiter{{Open: "/*", Close: "*/"}},
		},
		{
			Name:          "TypeScript",
			Category:      CategoryWeb,
			Extensions:    []string{".ts"},
			LineComments:  []string{"//"},
			BlockComments: []BlockDelimiter{{Open: "/*", Close: "*/"}},
		},
		{
			Name:          "TypeScript Declaration",
			Category:      CategoryWeb,
			Extensions:    []string{".d.ts"},
			LineComments:  []string{"//"},
			BlockComments: []BlockDelimiter{{Open: "/*", Close: "*/"}},
		},
		{
			Name:          "TypeScript TSX",
			Category:      CategoryWeb,
			Extensions:    []string{".tsx"},
			LineComments:  []string{"//"},
			BlockComments: []BlockDelimiter{{Open: "/*", Close: "*/"}},
		},
		{
			Name:       "JSON",
			Category:   CategoryData,
			Extensions: []string{".json"},
		},
		{
			Name:          "C",
			Category:      CategorySystems,
			Extensions:    []string{".c"},
			LineComments:  []string{"//"},
			BlockComments: []BlockDelimiter{{Open: "/*", Close: "*/"}},
		},
		{
			Name:          "C Header",
			Category:      CategorySystems,
			Extensions:    []string{".h"},
			LineComments:  []string{"//"},
			BlockComments: []BlockDelimiter{{Open: "/*", Close: "*/"}},
		},
		{
			Name:          "C++",
			Category:      CategorySystems,
			Extensions:    []string{".cpp"},
			LineComments:  []string{"//"},
			BlockComments: []BlockDelimiter{{Open: "/*", Close: "*/"}},
		},
		{
			Name:          "C#",
			Category:      CategorySystems,
			Extensions:    []string{".cs"},
			LineComments:  []string{"//"},
			BlockComments: []BlockDelimiter{{Open: "/*", Close: "*/"}},
		},
		{
			Name:          "Java",
			Category:      CategorySystems,
			Extensions:    []string{".java"},
			LineComments:  []string{"//"},
			BlockComments: []BlockDelimiter{{Open: "/*", Close: "*/"}},
		},
		{
			Name:          "Go",
			Category:      CategorySystems,
			Extensions:    []string{".go"},
			LineComments:  []string{"//"},
			BlockComments: []BlockDelimiter{{Open: "/*", Close: "*/"}},
		},
		{
			Name:          "Rust",
			Category:      CategorySystems,
			Extensions:    []string{".rs"},
			LineComments:  []string{"//"},
			BlockComments: []BlockDelimiter{{Open: "/*", Close: "*/"}},
		},
		{
			Name:          "PHP",
			Category:      CategoryWeb,
			Extensions:    []string{".php"},
			LineComments:  []string{"//", "#"},
			BlockComments: []BlockDelimiter{{Open: "/*", Close: "*/"}},
		},
		{
			Name:          "Markdown",
			Category:      CategoryMarkup,
			Extensions:    []string{".md"},
			BlockComments: []BlockDelimiter{{Open: "<!--", Close: "-->"}},
		},
		{
			Name:         "YAML",
			Category:     CategoryData,
			Extensions:   []string{".yaml", ".yml"},
			LineComments: []string{"#"},
		},
		{
			Name:         "TOML",
			Category:     CategoryData,
			Extensions:   []string{".toml"},
			LineComments: []string{"#"},
		},
		{
			Name:          "XML",
			Category:      CategoryMarkup,
			Extensions:    []string{".xml"},
			BlockComments: []BlockDelimiter{{Open: "<!--", Close: "-->"}},
		},
		{
			Name:          "SQL",
			Category:      CategoryQuery,
			Extensions:    []string{".sql"},
			LineComments:  []string{"--"},
			BlockComments: []BlockDelimiter{{Open: "/*", Close: "*/"}},
		},
		{
			Name:         "Shell",
			Category:     CategoryScript,
			Extensions:   []string{".sh"},
			LineComments: []string{"#"},
		},
		{
			Name:          "Lua",
			Category:      CategoryScript,
			Extensions:    []string{".lua"},
			LineComments:  []string{"--"},
			BlockComments: []BlockDelimiter{{Open: "--[[", Close: "]]"}},
		},
	}
}
