package config

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/nanoapp/hostkit/internal/credentials"
)

const (
	appName    = "hostbridged"
	configFile = "config.json"
)

type Config struct {
	ListenAddr    string `json:"listen_addr"`
	DataDir       string `json:"data_dir"`
	PairingSecret string `json:"-"`
}

func Load() (*Config, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	appDir := filepath.Join(configDir, appName)

	path := filepath.Join(appDir, configFile)
	var cfg Config

	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	} else {
		cfg.ListenAddr = "127.0.0.1:0"
		cfg.DataDir = filepath.Join(appDir, "storage")
		if err := os.MkdirAll(appDir, 0700); err != nil {
			return nil, err
		}
		out, _ := json.MarshalIndent(cfg, "", "  ")
		_ = os.WriteFile(path, out, 0600)
		log.Printf("Generated new config at: %s", path)
	}

	cfg.PairingSecret, err = credentials.LoadAppSecret("pairing_secret")
	if err != nil {
		secret := make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, err
		}
		cfg.PairingSecret = base64.StdEncoding.EncodeToString(secret)
		if err := credentials.StoreAppSecret("pairing_secret", cfg.PairingSecret); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(&cfg)
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HOSTBRIDGED_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("HOSTBRIDGED_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("HOSTBRIDGED_PAIRING_SECRET"); v != "" {
		cfg.PairingSecret = v
	}
}
