package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const (
	appName = "focusdesk"

	EnvDataDir  = "FOCUSDESK_DATA_DIR"
	EnvConfig   = "FOCUSDESK_CONFIG"
	EnvLogLevel = "FOCUSDESK_LOG_LEVEL"
)

type Config struct {
	DataDir     string
	BackupDir   string
	CatalogPath string
	SocketPath  string
	LogLevel    string
}

// Options carries values supplied on the command line. Empty fields fall
// through to the environment, then the config file, then defaults.
type Options struct {
	DataDir    string
	ConfigPath string
	LogLevel   string
	EnvFile    string
}

type fileConfig struct {
	DataDir  string `yaml:"data_dir"`
	LogLevel string `yaml:"log_level"`
}

func New(dataDir string) (Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	expanded, err := homedir.Expand(dataDir)
	if err != nil {
		return Config{}, fmt.Errorf("expand data dir: %w", err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return Config{}, fmt.Errorf("resolve data dir: %w", err)
	}
	backupDir := filepath.Join(abs, "backups")
	return Config{
		DataDir:     abs,
		BackupDir:   backupDir,
		CatalogPath: filepath.Join(backupDir, "catalog.db"),
		SocketPath:  filepath.Join(abs, "focusdesk.sock"),
		LogLevel:    "info",
	}, nil
}

func Load(opts Options) (Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("load env file: %w", err)
		}
	}

	file, err := readFile(firstNonEmpty(opts.ConfigPath, os.Getenv(EnvConfig)))
	if err != nil {
		return Config{}, err
	}

	dataDir := firstNonEmpty(opts.DataDir, os.Getenv(EnvDataDir), file.DataDir)
	if dataDir == "" {
		dataDir, err = DefaultDataDir()
		if err != nil {
			return Config{}, err
		}
	}
	cfg, err := New(dataDir)
	if err != nil {
		return Config{}, err
	}
	if level := firstNonEmpty(opts.LogLevel, os.Getenv(EnvLogLevel), file.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	return cfg, nil
}

// DefaultDataDir mirrors the per-user application data location of desktop
// shells: XDG data home on linux, the user config dir elsewhere.
func DefaultDataDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		home, err := homedir.Dir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		return filepath.Join(home, ".local", "share", appName), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appName), nil
}

func DefaultConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appName, "config.yaml"), nil
}

func readFile(path string) (fileConfig, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return fileConfig{}, nil
		}
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("expand config path: %w", err)
	}
	raw, err := os.ReadFile(expanded)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("read config file: %w", err)
	}
	cfg := fileConfig{}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("decode config file: %w", err)
	}
	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
