package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

// Config is the service configuration. Values come from an optional YAML
// file with environment variables taking precedence for secrets and
// deployment-specific settings.
type Config struct {
	Port string `yaml:"port"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`

	Session struct {
		TTLHours int `yaml:"ttl_hours"`
		// SinglePerUser revokes a user's previous sessions on login.
		// The default allows multiple concurrent sessions, matching the
		// observed behavior of the service this replaces.
		SinglePerUser bool `yaml:"single_per_user"`
	} `yaml:"session"`

	CSRF struct {
		// ExemptPaths lists routes the CSRF check skips. Exemption is
		// explicit per-route configuration, never inherited behavior.
		ExemptPaths []string `yaml:"exempt_paths"`
	} `yaml:"csrf"`

	Login struct {
		RatePerMinute int `yaml:"rate_per_minute"`
		Burst         int `yaml:"burst"`
	} `yaml:"login"`

	Upload struct {
		MaxBytes          int64    `yaml:"max_bytes"`
		AllowedExtensions []string `yaml:"allowed_extensions"`
	} `yaml:"upload"`

	Storage struct {
		// Backend selects the blob store: "local" or "minio".
		Backend string `yaml:"backend"`
		Local   struct {
			Dir string `yaml:"dir"`
		} `yaml:"local"`
		Minio struct {
			Endpoint string `yaml:"endpoint"`
			Bucket   string `yaml:"bucket"`
			UseSSL   bool   `yaml:"use_ssl"`
			// Credentials come from MINIO_ACCESS_KEY / MINIO_SECRET_KEY.
			AccessKey string `yaml:"-"`
			SecretKey string `yaml:"-"`
		} `yaml:"minio"`
	} `yaml:"storage"`
}

func defaults() *Config {
	cfg := &Config{Port: "5050"}
	cfg.CORS.AllowedOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	cfg.Session.TTLHours = 6
	cfg.CSRF.ExemptPaths = []string{"/register", "/login", "/csrf"}
	cfg.Login.RatePerMinute = 10
	cfg.Login.Burst = 5
	cfg.Upload.MaxBytes = 512 << 20
	cfg.Upload.AllowedExtensions = []string{"mp4", "avi", "mov", "wmv", "flv", "webm", "mkv"}
	cfg.Storage.Backend = "local"
	cfg.Storage.Local.Dir = "media/video"
	cfg.Storage.Minio.Bucket = "videos"
	return cfg
}

// Load reads the YAML config at path, falling back to defaults when the
// file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	cfg.Storage.Minio.AccessKey = os.Getenv("MINIO_ACCESS_KEY")
	cfg.Storage.Minio.SecretKey = os.Getenv("MINIO_SECRET_KEY")
	if endpoint := os.Getenv("MINIO_ENDPOINT"); endpoint != "" {
		cfg.Storage.Minio.Endpoint = endpoint
	}

	return cfg, nil
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLHours) * time.Hour
}

// CSRFExempt reports whether the path skips the CSRF check.
func (c *Config) CSRFExempt(path string) bool {
	for _, p := range c.CSRF.ExemptPaths {
		if p == path {
			return true
		}
	}
	return false
}

// ExtensionAllowed reports whether ext (without the dot, lowercase) is an
// accepted upload extension.
func (c *Config) ExtensionAllowed(ext string) bool {
	for _, e := range c.Upload.AllowedExtensions {
		if e == ext {
			return true
		}
	}
	return false
}
