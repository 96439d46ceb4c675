package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Git      GitConfig      `json:"git" yaml:"git"`
	Defaults DefaultsConfig `json:"defaults" yaml:"defaults"`
	Filters  FilterConfig   `json:"filters" yaml:"filters"`
	Log      LogConfig      `json:"log" yaml:"log"`
}

// GitConfig holds subprocess settings.
type GitConfig struct {
	Binary         string `json:"binary" yaml:"binary"`                 // Default: "git"
	TimeoutSeconds int    `json:"timeoutSeconds" yaml:"timeoutSeconds"` // Default: 30
}

// Timeout returns the per-command timeout.
func (g GitConfig) Timeout() time.Duration {
	if g.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// DefaultsConfig holds the argument defaults and rendering limits of the reports.
type DefaultsConfig struct {
	CommitLimit          int `json:"commitLimit" yaml:"commitLimit"`
	FileHistoryLimit     int `json:"fileHistoryLimit" yaml:"fileHistoryLimit"`
	HotspotLimit         int `json:"hotspotLimit" yaml:"hotspotLimit"`
	ChurnTopFiles        int `json:"churnTopFiles" yaml:"churnTopFiles"`
	MaxListedCommits     int `json:"maxListedCommits" yaml:"maxListedCommits"`
	SubjectWidth         int `json:"subjectWidth" yaml:"subjectWidth"`
	TopContributors      int `json:"topContributors" yaml:"topContributors"`
	HotspotDetailFiles   int `json:"hotspotDetailFiles" yaml:"hotspotDetailFiles"`
	HotspotDetailCommits int `json:"hotspotDetailCommits" yaml:"hotspotDetailCommits"`
}

// FilterConfig holds file path filtering options for hotspot and churn reports.
type FilterConfig struct {
	Include []string `json:"include" yaml:"include"`
	Exclude []string `json:"exclude" yaml:"exclude"`
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string `json:"level" yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Git: GitConfig{
			Binary:         "git",
			TimeoutSeconds: 30,
		},
		Defaults: DefaultsConfig{
			CommitLimit:          10,
			FileHistoryLimit:     20,
			HotspotLimit:         10,
			ChurnTopFiles:        10,
			MaxListedCommits:     200,
			SubjectWidth:         72,
			TopContributors:      5,
			HotspotDetailFiles:   3,
			HotspotDetailCommits: 5,
		},
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// configNames are searched in the working directory, then in the home directory.
var configNames = []string{".git-history-mcp.json", ".git-history-mcp.yaml", ".git-history-mcp.yml"}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = findConfig()
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func findConfig() string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, home)
	} else if envHome := os.Getenv("HOME"); envHome != "" {
		dirs = append(dirs, envHome)
	}
	for _, dir := range dirs {
		for _, name := range configNames {
			p := filepath.Join(dir, name)
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
	}
	return ""
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// SaveConfig saves configuration to a file, as YAML or JSON by extension.
func SaveConfig(cfg *Config, path string) error {
	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
