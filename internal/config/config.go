package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything pitch reads from config.toml.
type Config struct {
	DeckDir      string
	AssetDir     string
	ExportDir    string
	DefaultDeck  string
	LogFile      string
	Scale        int
	SettleDelay  time.Duration
	ImageTimeout time.Duration
}

const (
	defaultConfigPath   = "~/.config/pitch/config.toml"
	defaultDeckDir      = "~/.config/pitch/decks"
	defaultAssetDir     = "~/.local/share/pitch/assets"
	defaultExportDir    = "."
	defaultLogFile      = "~/.local/state/pitch/pitch.log"
	defaultScale        = 2
	defaultSettleDelay  = 300 * time.Millisecond
	defaultImageTimeout = 5 * time.Second

	maxScale = 4
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		DeckDir:      mustExpand(defaultDeckDir),
		AssetDir:     mustExpand(defaultAssetDir),
		ExportDir:    mustExpand(defaultExportDir),
		LogFile:      mustExpand(defaultLogFile),
		Scale:        defaultScale,
		SettleDelay:  defaultSettleDelay,
		ImageTimeout: defaultImageTimeout,
	}
}

// Load locates and parses the pitch config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DeckDir        string `toml:"deck_dir"`
		AssetDir       string `toml:"asset_dir"`
		ExportDir      string `toml:"export_dir"`
		DefaultDeck    string `toml:"default_deck"`
		LogFile        string `toml:"log_file"`
		Scale          int    `toml:"scale"`
		SettleDelayMS  *int   `toml:"settle_delay_ms"`
		ImageTimeoutMS int    `toml:"image_timeout_ms"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.DeckDir = pathOr(raw.DeckDir, cfg.DeckDir)
	cfg.AssetDir = pathOr(raw.AssetDir, cfg.AssetDir)
	cfg.ExportDir = pathOr(raw.ExportDir, cfg.ExportDir)
	cfg.LogFile = pathOr(raw.LogFile, cfg.LogFile)
	cfg.DefaultDeck = strings.TrimSpace(raw.DefaultDeck)

	switch {
	case raw.Scale <= 0:
	case raw.Scale > maxScale:
		cfg.Scale = maxScale
	default:
		cfg.Scale = raw.Scale
	}

	// Zero is a valid settle delay, so only an absent key keeps the default.
	if raw.SettleDelayMS != nil && *raw.SettleDelayMS >= 0 {
		cfg.SettleDelay = time.Duration(*raw.SettleDelayMS) * time.Millisecond
	}
	if raw.ImageTimeoutMS > 0 {
		cfg.ImageTimeout = time.Duration(raw.ImageTimeoutMS) * time.Millisecond
	}

	return cfg, nil
}

func pathOr(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return mustExpand(value)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
