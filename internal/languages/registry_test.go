package languages

import (
	"testing"
)

// TestProfileForFileKnownExtensions 验证常见后缀都能映射到画像。
func TestProfileForFileKnownExtensions(t *testing.T) {
	registry := NewRegistry()

	cases := []struct {
		path     string
		language string
	}{
		{path: "main.go", language: "Go"},
		{path: "app/Main.PY", language: "Python"},
		{path: "src/index.jsx", language: "JavaScript JSX"},
		{path: "conf/app.yml", language: "YAML"},
		{path: "schema.sql", language: "SQL"},
		{path: "widget.vue", language: "Vue"},
	}

	for _, tc := range cases {
		profile, ok := registry.ProfileForFile(tc.path)
		if !ok {
			t.Fatalf("path %s: expected a profile", tc.path)
		}
		if profile.Name != tc.language {
			t.Fatalf("path %s: expected %s, got %s", tc.path, tc.language, profile.Name)
		}
	}
}

// TestProfileForFileCompoundExtension 验证复合后缀优先：
// .d.ts 命中声明文件画像，普通 .ts 不受影响。
func TestProfileForFileCompoundExtension(t *testing.T) {
	registry := NewRegistry()

	declaration, ok := registry.ProfileForFile("lib/types.d.ts")
	if !ok || declaration.Name != "TypeScript Declaration" {
		t.Fatalf("expected TypeScript Declaration for .d.ts, got %+v (ok=%v)", declaration, ok)
	}

	plain, ok := registry.ProfileForFile("lib/util.ts")
	if !ok || plain.Name != "TypeScript" {
		t.Fatalf("expected TypeScript for .ts, got %+v (ok=%v)", plain, ok)
	}
}

// TestProfileForFileUnknownExtension 验证未注册后缀不产生画像。
func TestProfileForFileUnknownExtension(t *testing.T) {
	registry := NewRegistry()

	if _, ok := registry.ProfileForFile("README.txt"); ok {
		t.Fatalf("expected no profile for .txt")
	}
	if _, ok := registry.ProfileForFile("Makefile"); ok {
		t.Fatalf("expected no profile for extensionless file")
	}
}

// TestApplyOverridesAddsLanguage 验证用户画像可以新增语言并接管已有后缀。
func TestApplyOverridesAddsLanguage(t *testing.T) {
	registry := NewRegistry()
	registry.ApplyOverrides([]Profile{
		{
			Name:         "Zig",
			Category:     CategorySystems,
			Extensions:   []string{".zig"},
			LineComments: []string{"//"},
		},
		{
			Name:         "Plain Config",
			Category:     CategoryData,
			Extensions:   []string{".toml"},
			LineComments: []string{"#"},
		},
	})

	added, ok := registry.ProfileForFile("main.zig")
	if !ok || added.Name != "Zig" {
		t.Fatalf("expected Zig profile, got %+v (ok=%v)", added, ok)
	}

	takenOver, ok := registry.ProfileForFile("Cargo.toml")
	if !ok || takenOver.Name != "Plain Config" {
		t.Fatalf("expected override to take over .toml, got %+v (ok=%v)", takenOver, ok)
	}
}

// TestProfilesSorted 验证画像清单按语言名排序，供 language 命令展示。
func TestProfilesSorted(t *testing.T) {
	registry := NewRegistry()
	profiles := registry.Profiles()

	if len(profiles) == 0 {
		t.Fatalf("expected builtin profiles")
	}
	for i := 1; i < len(profiles); i++ {
		if profiles[i-1].Name > profiles[i].Name {
			t.Fatalf("profiles not sorted: %s before %s", profiles[i-1].Name, profiles[i].Name)
		}
	}
}
