package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Cfg 是一个全局变量，用于存储所有应用程序的配置
var Cfg *Config

// Config 结构体定义了应用程序的所有配置项
// 它与 config.yaml 文件的结构完全对应
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Tournament TournamentConfig `mapstructure:"tournament"`
}

// ServerConfig 定义了服务器相关的配置
type ServerConfig struct {
	Address string     `mapstructure:"address"`
	Cors    CorsConfig `mapstructure:"cors"`
}

// CorsConfig 定义了CORS相关的配置
type CorsConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// DatabaseConfig 定义了数据库相关的配置
type DatabaseConfig struct {
	Sqlite SqliteConfig `mapstructure:"sqlite"`
}

// SqliteConfig 定义了SQLite数据库文件的配置
type SqliteConfig struct {
	Path string `mapstructure:"path"`
}

// TournamentConfig 定义了锦标赛窗口的配置。
// StartTime和EndTime都是RFC3339格式的字符串，留空表示未配置。
type TournamentConfig struct {
	StartTime string `mapstructure:"startTime"`
	EndTime   string `mapstructure:"endTime"`
}

// Start 解析并返回配置的锦标赛开始时间。
// 未配置时返回nil，格式错误时返回error。
func (tc TournamentConfig) Start() (*time.Time, error) {
	if tc.StartTime == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, tc.StartTime)
	if err != nil {
		return nil, fmt.Errorf("无法解析tournament.startTime: %w", err)
	}
	return &t, nil
}

// End 解析并返回配置的锦标赛结束时间。
// 未配置时返回nil，格式错误时返回error。
func (tc TournamentConfig) End() (*time.Time, error) {
	if tc.EndTime == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, tc.EndTime)
	if err != nil {
		return nil, fmt.Errorf("无法解析tournament.endTime: %w", err)
	}
	return &t, nil
}

// LoadConfig 函数负责查找、加载和解析配置文件
// 它会在指定的路径中查找名为 config.yaml 的文件
func LoadConfig() (*Config, error) {
	v := viper.New()

	// 1. 设置配置文件名和类型
	v.SetConfigName("config") // 文件名 (不带扩展名)
	v.SetConfigType("yaml")   // 文件类型

	// 2. 添加配置文件搜索路径
	// 可以添加多个路径，Viper会按顺序查找
	v.AddConfigPath("./config") // `config/config.yaml`
	v.AddConfigPath(".")        // `./config.yaml` (如果在根目录)

	// 3. 设置环境变量支持
	// 允许通过环境变量覆盖配置，例如 TOURNAMENT_STARTTIME=2025-09-01T00:00:00Z
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. 设置默认值，保证没有配置文件时也能启动。
	// 锦标赛窗口也要注册默认值，否则配置文件缺失时Viper不认识这些键，
	// TOURNAMENT_STARTTIME这类环境变量覆盖会被悄悄丢掉。
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.cors.allowedOrigins", []string{})
	v.SetDefault("database.sqlite.path", "leaderboard.db")
	v.SetDefault("tournament.startTime", "")
	v.SetDefault("tournament.endTime", "")

	// 5. 读取配置文件（文件缺失不是致命错误，环境变量和默认值仍然生效）
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		fmt.Println("未找到config.yaml，使用默认值和环境变量。")
	}

	// 6. 将配置反序列化到结构体中
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// 7. 提前校验锦标赛时间格式，避免在请求路径上才暴露错误
	if _, err := cfg.Tournament.Start(); err != nil {
		return nil, err
	}
	if _, err := cfg.Tournament.End(); err != nil {
		return nil, err
	}

	// 8. 将加载的配置赋值给全局变量
	Cfg = &cfg

	return Cfg, nil
}
