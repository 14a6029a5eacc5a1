package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	DefaultGeminiModel = "gemini-3-flash-preview"
	DefaultOutputDir   = "output"
)

// DefaultCredentialEnv 默认读取的凭证环境变量，按顺序回退
var DefaultCredentialEnv = []string{"API_KEY", "API"}

// Config 项目配置结构体
type Config struct {
	Provider   string           `yaml:"provider"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	LLM        LLMConfig        `yaml:"llm"`
	Search     SearchConfig     `yaml:"search"`
	Credential CredentialConfig `yaml:"credential"`
	Log        LogConfig        `yaml:"log"`
	OutputDir  string           `yaml:"output_dir"`
}

// GeminiConfig Google GenAI 相关配置
type GeminiConfig struct {
	Model string `yaml:"model"`
	// ThinkingBudget 为 0 时使用模型默认值
	ThinkingBudget int32 `yaml:"thinking_budget"`
}

// LLMConfig OpenAI 兼容接口配置，api_key 不在此处配置，统一走 Credential
type LLMConfig struct {
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// SearchConfig 搜索相关配置，仅 openai provider 使用
type SearchConfig struct {
	Provider string        `yaml:"provider"`
	Tavily   TavilyConfig  `yaml:"tavily"`
	SearXNG  SearXNGConfig `yaml:"searxng"`
	// MaxResults 注入到 prompt 的搜索结果数量
	MaxResults int `yaml:"max_results"`
	// EnrichContent 摘要过短时抓取原文补全
	EnrichContent bool `yaml:"enrich_content"`
}

// TavilyConfig Tavily 配置
type TavilyConfig struct {
	APIKey string `yaml:"api_key"`
}

// SearXNGConfig SearXNG 配置
type SearXNGConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"`
}

// CredentialConfig 凭证读取配置
type CredentialConfig struct {
	Env []string `yaml:"env"`
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// LoadConfig 从指定路径加载配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// Default 返回未读取任何文件时的配置
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults 填充缺省字段
func (c *Config) ApplyDefaults() {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	if c.Provider == "" {
		c.Provider = ProviderGemini
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = DefaultGeminiModel
	}
	if len(c.Credential.Env) == 0 {
		c.Credential.Env = append([]string(nil), DefaultCredentialEnv...)
	}
	if c.Search.MaxResults <= 0 {
		c.Search.MaxResults = 8
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
}

// CredentialSource 每次调用时读取凭证，不在进程启动时缓存
type CredentialSource func() string

// EnvCredential 依次读取环境变量，返回第一个非空值
func EnvCredential(names ...string) CredentialSource {
	if len(names) == 0 {
		names = DefaultCredentialEnv
	}
	return func() string {
		for _, name := range names {
			if v := os.Getenv(name); v != "" {
				return v
			}
		}
		return ""
	}
}

// CredentialReader 根据配置构造凭证读取函数
func (c *Config) CredentialReader() CredentialSource {
	return EnvCredential(c.Credential.Env...)
}
