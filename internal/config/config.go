// Package config 负责加载 locr 的可选配置文件。
// 配置永远是可选项：没有 .locr.yaml 时一切走默认值，
// 命令行 flag 的显式取值总是覆盖文件取值。
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config 是 .locr.yaml 的完整结构。
//
// 示例：
//
//	color: true
//	format: table
//	ignore:
//	  - "*.gen.go"
//	  - "fixtures/"
//	languages_file: .locr-languages.yaml
type Config struct {
	Color         bool     `mapstructure:"color"`
	Raw           bool     `mapstructure:"raw"`
	Format        string   `mapstructure:"format"`
	Output        string   `mapstructure:"output"`
	Ignore        []string `mapstructure:"ignore"`
	LanguagesFile string   `mapstructure:"languages_file"`
}

// Load 从扫描根目录读取 .locr.yaml 并叠加 LOCR_* 环境变量。
// 配置文件不存在不是错误；文件存在但无法解析才会失败。
func Load(root string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(".locr")
	v.SetConfigType("yaml")
	v.AddConfigPath(root)
	v.SetEnvPrefix("LOCR")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults 填充未设置字段的默认值。
func applyDefaults(cfg *Config) {
	if cfg.Format == "" {
		cfg.Format = "table"
	}
}
