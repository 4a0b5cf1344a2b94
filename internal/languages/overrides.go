package languages

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// overridesDocument 是用户语言画像文件的顶层结构。
//
// 文件示例：
//
//	languages:
//	  - name: Zig
//	    category: systems
//	    extensions: [".zig"]
//	    line_comments: ["//"]
type overridesDocument struct {
	Languages []Profile `yaml:"languages"`
}

// LoadOverrides 读取并解析用户语言画像文件。
func LoadOverrides(path string) ([]Profile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read languages file: %w", err)
	}

	var document overridesDocument
	if err := yaml.Unmarshal(content, &document); err != nil {
		return nil, fmt.Errorf("parse languages file: %w", err)
	}

	for index, profile := range document.Languages {
		if strings.TrimSpace(profile.Name) == "" {
			return nil, fmt.Errorf("languages[%d]: name is required", index)
		}
		if len(profile.Extensions) == 0 {
			return nil, fmt.Errorf("languages[%d] (%s): at least one extension is required", index, profile.Name)
		}
		for _, ext := range profile.Extensions {
			if !strings.HasPrefix(ext, ".") {
				return nil, fmt.Errorf("languages[%d] (%s): extension %q must start with a dot", index, profile.Name, ext)
			}
		}
	}

	return document.Languages, nil
}

// ApplyOverrides 把用户画像并入注册表。
// 用户画像接管其声明的全部后缀；新后缀即新增语言。
func (r *Registry) ApplyOverrides(profiles []Profile) {
	for _, profile := range profiles {
		r.register(profile)
	}
}
