package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var DefaultConfigYAML []byte

type Config struct {
	Generation Generation `yaml:"generation"`
	Output     Output     `yaml:"output"`
	Logging    Logging    `yaml:"logging"`
}

type Generation struct {
	Provider       string        `yaml:"provider"`
	Model          string        `yaml:"model"`
	BaseURL        string        `yaml:"base_url"`
	APIKeyEnv      string        `yaml:"api_key_env"`
	Temperature    float64       `yaml:"temperature"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	Concurrent     bool          `yaml:"concurrent"`
}

type Output struct {
	ReportFile     string `yaml:"report_file"`
	DependencyFile string `yaml:"dependency_file"`
	WritePartial   bool   `yaml:"write_partial"`
}

type Logging struct {
	Level string `yaml:"level"`
}

// ConfigDir returns the XDG config directory for seowriter.
func ConfigDir() string {
	return filepath.Join(homeDir(), ".config", "seowriter")
}

// ResolveConfigPath finds the config file following priority:
// explicit path > ~/.config/seowriter/config.yaml > ./config.yaml.
// An empty path with a nil error means no file exists and defaults apply.
func ResolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	xdgConfig := filepath.Join(ConfigDir(), "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig, nil
	}

	cwdConfig := "config.yaml"
	if _, err := os.Stat(cwdConfig); err == nil {
		return cwdConfig, nil
	}

	return "", nil
}

// Load reads and parses a config YAML file. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return parse(DefaultConfigYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parse(data)
}

// LoadEnv loads .env.local and .env from the working directory. Variables
// already set in the process environment win; missing files are ignored.
func LoadEnv() error {
	for _, name := range []string{".env.local", ".env"} {
		if err := godotenv.Load(name); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("loading %s: %w", name, err)
		}
	}
	return nil
}

// parse parses YAML bytes into a Config, applying defaults.
func parse(data []byte) (*Config, error) {
	cfg := &Config{
		Generation: Generation{
			Provider:       "openai",
			Model:          "gpt-3.5-turbo",
			APIKeyEnv:      "OPENAI_API_KEY",
			Temperature:    0.7,
			RequestTimeout: 120 * time.Second,
			Concurrent:     true,
		},
		Output: Output{
			ReportFile:     "generated_article_full.txt",
			DependencyFile: "requirements.txt",
		},
		Logging: Logging{Level: "INFO"},
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// APIKey returns the credential from the configured environment variable.
// It is not validated here; a missing key fails each generation call instead.
func (g Generation) APIKey() string {
	return os.Getenv(g.APIKeyEnv)
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
