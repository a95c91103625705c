package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// IndexerConfig configures the indexing run.
type IndexerConfig struct {
	Workers        int    `yaml:"workers"`
	ExcludePattern string `yaml:"exclude_pattern"`
	MaxFileSize    string `yaml:"max_file_size"`
}

// QueryConfig holds query-side defaults.
type QueryConfig struct {
	IndexPath string `yaml:"index_path"`
	TopK      int    `yaml:"top_k"`
}

// LLMConfig configures the local language-model subprocess.
type LLMConfig struct {
	Command      string `yaml:"command"`
	Model        string `yaml:"model"`
	TimeoutSecs  int    `yaml:"timeout_secs"`
	GraceSecs    int    `yaml:"grace_secs"`
	ExcerptChars int    `yaml:"excerpt_chars"`
}

// SummarizerConfig configures extractive summarization.
type SummarizerConfig struct {
	MaxSentences int `yaml:"max_sentences"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Indexer    IndexerConfig    `yaml:"indexer"`
	Query      QueryConfig      `yaml:"query"`
	LLM        LLMConfig        `yaml:"llm"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	applyEnvOverrides(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./docindex.yaml first, then ~/.config/docindex/config.yaml.
// If neither exists, it writes defaults to ~/.config/docindex/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "docindex.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	applyEnvOverrides(cfg)
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "docindex", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{}
	applyConfigDefaults(cfg)
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Query.IndexPath == "" {
		cfg.Query.IndexPath = "docindex_index.json"
	}
	if cfg.Query.TopK == 0 {
		cfg.Query.TopK = 3
	}
	if cfg.LLM.Command == "" {
		cfg.LLM.Command = "ollama"
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = "mistral"
	}
	if cfg.LLM.TimeoutSecs == 0 {
		cfg.LLM.TimeoutSecs = 60
	}
	if cfg.LLM.GraceSecs == 0 {
		cfg.LLM.GraceSecs = 2
	}
	if cfg.LLM.ExcerptChars == 0 {
		cfg.LLM.ExcerptChars = 1000
	}
	if cfg.Summarizer.MaxSentences == 0 {
		cfg.Summarizer.MaxSentences = 5
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("DOCINDEX_INDEX"); v != "" {
		cfg.Query.IndexPath = v
	}
	if v := os.Getenv("OLLAMA_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
}
