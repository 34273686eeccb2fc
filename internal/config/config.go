package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config drives the dhcpwired daemon.
type Config struct {
	Name            string `toml:"name"`
	ListenAddr      string `toml:"listen_addr"`
	AdminAddr       string `toml:"admin_addr"`
	ReadBufferBytes int    `toml:"read_buffer_bytes"`
	LogLevel        string `toml:"log_level"`
}

func Default() Config {
	return Config{
		Name:            "dhcpwired",
		ListenAddr:      ":67",
		AdminAddr:       ":9067",
		ReadBufferBytes: 1500,
		LogLevel:        "info",
	}
}

func Load(path string) (Config, error) {
	cfg := Default()
	if err := loadToml(path, &cfg); err != nil {
		return Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("config missing name")
	}
	if strings.TrimSpace(cfg.ListenAddr) == "" {
		return fmt.Errorf("config missing listen_addr")
	}
	if strings.TrimSpace(cfg.AdminAddr) == "" {
		return fmt.Errorf("config missing admin_addr")
	}
	// Datagrams are truncated to the read buffer; below the 576-byte BOOTP
	// minimum that guarantees losing options.
	if cfg.ReadBufferBytes < 576 {
		return fmt.Errorf("read_buffer_bytes too small: %d", cfg.ReadBufferBytes)
	}
	return nil
}
