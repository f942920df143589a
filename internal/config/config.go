package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const (
	APIVersion = "gigadmin.io/v1"
	Kind       = "Config"
)

// Storage backends.
const (
	BackendBadger = "badger"
	BackendFile   = "file"
	BackendMemory = "memory"
)

type Config struct {
	InstanceID  string
	HTTPPort    int
	DataDir     string
	Backend     string
	Namespace   string
	SeedOnStart bool
	Debug       bool
	LogLevel    string
}

// File is the YAML configuration document.
type File struct {
	APIVersion string   `yaml:"apiVersion"`
	Kind       string   `yaml:"kind"`
	Spec       FileSpec `yaml:"spec"`
}

type FileSpec struct {
	InstanceID  string `yaml:"instanceID,omitempty"`
	HTTPPort    int    `yaml:"httpPort,omitempty"`
	DataDir     string `yaml:"dataDir,omitempty"`
	Backend     string `yaml:"backend,omitempty"`
	Namespace   string `yaml:"namespace,omitempty"`
	SeedOnStart *bool  `yaml:"seedOnStart,omitempty"`
	Debug       *bool  `yaml:"debug,omitempty"`
	LogLevel    string `yaml:"logLevel,omitempty"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() *Config {
	return &Config{
		InstanceID:  "gigadmin-" + uuid.NewString()[:8],
		HTTPPort:    8000,
		DataDir:     "./data",
		Backend:     BackendBadger,
		Namespace:   "default",
		SeedOnStart: true,
		LogLevel:    "info",
	}
}

// Load reads configuration from the environment on top of the defaults.
func Load() *Config {
	cfg := Defaults()
	cfg.applyEnv()
	return cfg
}

// LoadFile reads the YAML file at path, then applies environment overrides.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	f, err := ParseFile(data)
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	cfg.applyFile(f.Spec)
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func ParseFile(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("yaml parse: %w", err)
	}

	if f.APIVersion != APIVersion {
		return nil, fmt.Errorf("invalid apiVersion: %s", f.APIVersion)
	}

	if f.Kind != Kind {
		return nil, fmt.Errorf("invalid kind: %s", f.Kind)
	}

	return &f, nil
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendBadger, BackendFile, BackendMemory:
	default:
		return fmt.Errorf("invalid backend: %s", c.Backend)
	}
	if c.Namespace == "" {
		return fmt.Errorf("namespace is required")
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid http port: %d", c.HTTPPort)
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func (c *Config) applyFile(s FileSpec) {
	if s.InstanceID != "" {
		c.InstanceID = s.InstanceID
	}
	if s.HTTPPort != 0 {
		c.HTTPPort = s.HTTPPort
	}
	if s.DataDir != "" {
		c.DataDir = s.DataDir
	}
	if s.Backend != "" {
		c.Backend = s.Backend
	}
	if s.Namespace != "" {
		c.Namespace = s.Namespace
	}
	if s.SeedOnStart != nil {
		c.SeedOnStart = *s.SeedOnStart
	}
	if s.Debug != nil {
		c.Debug = *s.Debug
	}
	if s.LogLevel != "" {
		c.LogLevel = s.LogLevel
	}
}

func (c *Config) applyEnv() {
	c.InstanceID = getEnv("GIGADMIN_INSTANCE_ID", c.InstanceID)
	c.HTTPPort = getEnvInt("GIGADMIN_HTTP_PORT", c.HTTPPort)
	c.DataDir = getEnv("GIGADMIN_DATA_DIR", c.DataDir)
	c.Backend = getEnv("GIGADMIN_BACKEND", c.Backend)
	c.Namespace = getEnv("GIGADMIN_NAMESPACE", c.Namespace)
	c.SeedOnStart = getEnvBool("GIGADMIN_SEED_ON_START", c.SeedOnStart)
	c.Debug = getEnvBool("GIGADMIN_DEBUG", c.Debug)
	c.LogLevel = getEnv("GIGADMIN_LOG_LEVEL", c.LogLevel)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		return v == "true" || v == "1"
	}
	return fallback
}
