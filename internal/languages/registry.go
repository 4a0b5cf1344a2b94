package languages

import (
	"path/filepath"
	"sort"
	"strings"
)

// Registry 管理语言画像注册与后缀映射。
// 未注册后缀的文件不会被扫描。
type Registry struct {
	profiles []*Profile
	byExt    map[string]*Profile
}

// NewRegistry 创建并注册全部内置语言画像。
func NewRegistry() *Registry {
	registry := &Registry{
		byExt: make(map[string]*Profile),
	}
	for _, profile := range builtinProfiles() {
		registry.register(profile)
	}
	return registry
}

// register 注册一个画像；重复后缀由后注册者接管。
func (r *Registry) register(profile Profile) {
	stored := profile
	r.profiles = append(r.profiles, &stored)
	for _, ext := range stored.Extensions {
		r.byExt[strings.ToLower(ext)] = &stored
	}
}

// ProfileForFile 根据文件后缀查找画像。
// 复合后缀（如 .d.ts）优先于普通后缀（.ts）被匹配。
func (r *Registry) ProfileForFile(path string) (*Profile, bool) {
	base := strings.ToLower(filepath.Base(path))

	if compound, ok := compoundExt(base); ok {
		if profile, found := r.byExt[compound]; found {
			return profile, true
		}
	}

	profile, found := r.byExt[filepath.Ext(base)]
	return profile, found
}

// compoundExt 提取形如 .d.ts 的双段后缀。
// 文件名中不足两个点号时返回 false。
func compoundExt(base string) (string, bool) {
	last := strings.LastIndexByte(base, '.')
	if last <= 0 {
		return "", false
	}
	prev := strings.LastIndexByte(base[:last], '.')
	if prev < 0 {
		return "", false
	}
	return base[prev:], true
}

// Profiles 返回已注册画像清单，按语言名排序。
func (r *Registry) Profiles() []Profile {
	result := make([]Profile, 0, len(r.profiles))
	for _, profile := range r.profiles {
		copied := *profile
		copied.Extensions = append([]string(nil), profile.Extensions...)
		sort.Strings(copied.Extensions)
		result = append(result, copied)
	}

	sort.Slice(result, func(i int, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}
