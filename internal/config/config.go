package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix は環境変数のプレフィックス
const EnvPrefix = "AUTOCOMMENT"

// Config は接続先などの周辺設定。
// トークンとコメント本文はコマンドラインからのみ受け取るため、ここには含めない。
type Config struct {
	GitHub GitHubConfig `mapstructure:"github"`
}

// GitHubConfig はGitHub関連の設定
type GitHubConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// NewConfig はデフォルト値で埋めたConfigを作成する
func NewConfig() *Config {
	return &Config{}
}

// NewViper は設定ファイルと環境変数を読み込んだviperインスタンスを返す。
// configPathが空の場合は $HOME/.config/autocomment と $HOME から autocomment.yml を探す。
// 設定ファイルが存在しない場合はエラーにしない。
func NewViper(configPath string) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("github.base_url", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			if os.IsNotExist(err) {
				return v, nil
			}
			return nil, fmt.Errorf("failed to access config file: %w", err)
		}
		v.SetConfigFile(configPath)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			// HOMEが解決できない環境では環境変数のみで動作する
			return v, nil
		}
		v.AddConfigPath(filepath.Join(home, ".config", "autocomment"))
		v.AddConfigPath(home)
		v.SetConfigName("autocomment")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return v, nil
}

// FromViper はviperの内容をConfigにマッピングする
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := NewConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	if c.GitHub.BaseURL != "" {
		u, err := url.Parse(c.GitHub.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid github.base_url: %q", c.GitHub.BaseURL)
		}
	}
	return nil
}
