package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"focusdesk/internal/platform/config"
)

func TestNewDerivesPathsFromDataDir(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.BackupDir != filepath.Join(dir, "backups") {
		t.Fatalf("unexpected backup dir %s", cfg.BackupDir)
	}
	if cfg.CatalogPath != filepath.Join(dir, "backups", "catalog.db") {
		t.Fatalf("unexpected catalog path %s", cfg.CatalogPath)
	}
	if _, err := config.New("  "); err == nil {
		t.Fatalf("expected empty data dir to fail")
	}
}

func TestLoadPrecedence(t *testing.T) {
	base := t.TempDir()
	cfgPath := filepath.Join(base, "config.yaml")
	fromFile := filepath.Join(base, "from-file")
	raw := "data_dir: " + fromFile + "\nlog_level: DEBUG\n"
	if err := os.WriteFile(cfgPath, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(config.EnvDataDir, "")
	t.Setenv(config.EnvLogLevel, "")

	cfg, err := config.Load(config.Options{ConfigPath: cfgPath, EnvFile: filepath.Join(base, "missing.env")})
	if err != nil {
		t.Fatalf("load from file: %v", err)
	}
	if cfg.DataDir != fromFile || cfg.LogLevel != "debug" {
		t.Fatalf("expected file values, got %+v", cfg)
	}

	fromEnv := filepath.Join(base, "from-env")
	t.Setenv(config.EnvDataDir, fromEnv)
	cfg, err = config.Load(config.Options{ConfigPath: cfgPath, EnvFile: filepath.Join(base, "missing.env")})
	if err != nil {
		t.Fatalf("load from env: %v", err)
	}
	if cfg.DataDir != fromEnv {
		t.Fatalf("env should override file, got %s", cfg.DataDir)
	}

	fromFlag := filepath.Join(base, "from-flag")
	cfg, err = config.Load(config.Options{DataDir: fromFlag, ConfigPath: cfgPath, EnvFile: filepath.Join(base, "missing.env")})
	if err != nil {
		t.Fatalf("load from flag: %v", err)
	}
	if cfg.DataDir != fromFlag {
		t.Fatalf("flag should override env, got %s", cfg.DataDir)
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	base := t.TempDir()
	envPath := filepath.Join(base, "local.env")
	target := filepath.Join(base, "dotenv-data")
	if err := os.WriteFile(envPath, []byte(config.EnvDataDir+"="+target+"\n"), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	// godotenv never overrides variables that are already set.
	t.Setenv(config.EnvDataDir, "")
	os.Unsetenv(config.EnvDataDir)

	cfg, err := config.Load(config.Options{ConfigPath: filepath.Join(base, "none.yaml"), EnvFile: envPath})
	if err == nil {
		t.Fatalf("expected missing explicit config file to fail, got %+v", cfg)
	}
	cfg, err = config.Load(config.Options{EnvFile: envPath})
	if err != nil {
		t.Fatalf("load with env file: %v", err)
	}
	if cfg.DataDir != target {
		t.Fatalf("expected data dir from env file, got %s", cfg.DataDir)
	}
}

func TestLoadRejectsMalformedConfig(t *testing.T) {
	base := t.TempDir()
	cfgPath := filepath.Join(base, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("data_dir: [unterminated"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.Load(config.Options{ConfigPath: cfgPath, EnvFile: filepath.Join(base, "missing.env")}); err == nil {
		t.Fatalf("expected malformed config to fail")
	}
}
