package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	insecureSessionSecret = "change-me"
	defaultSeedPassword   = "1234"
)

type Config struct {
	Env           string `yaml:"env"`
	DBDriver      string `yaml:"db_driver"`
	DBDSN         string `yaml:"db_dsn"`
	ServerPort    string `yaml:"server_port"`
	SessionSecret string `yaml:"session_secret"`
	LogLevel      string `yaml:"log_level"`

	Seed     SeedConfig     `yaml:"seed"`
	Intake   IntakeConfig   `yaml:"intake"`
	Workflow WorkflowConfig `yaml:"workflow"`
}

type SeedConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Password string `yaml:"password"`
}

type IntakeConfig struct {
	// RatePerMinute caps public request submissions per client address. Zero disables the limit.
	RatePerMinute int `yaml:"rate_per_minute"`
	Burst         int `yaml:"burst"`
}

type WorkflowConfig struct {
	// AllowRecruitmentBypass keeps the pending -> completed shortcut of recruitment campaigns.
	AllowRecruitmentBypass bool `yaml:"allow_recruitment_bypass"`
}

// Load reads .env (if present) and the environment, then overlays the YAML file named by
// path or by CONFIG_FILE.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:           getEnv("APP_ENV", "development"),
		DBDriver:      getEnv("DB_DRIVER", "postgres"),
		DBDSN:         os.Getenv("DB_DSN"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Seed: SeedConfig{
			Enabled:  getBool("SEED_ENABLED", true),
			Password: getEnv("SEED_PASSWORD", defaultSeedPassword),
		},
		Intake: IntakeConfig{
			RatePerMinute: getInt("INTAKE_RATE_PER_MINUTE", 30),
			Burst:         getInt("INTAKE_BURST", 5),
		},
		Workflow: WorkflowConfig{
			AllowRecruitmentBypass: getBool("ALLOW_RECRUITMENT_BYPASS", true),
		},
	}

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config file: %w", err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("decode config file %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Development() bool {
	return c.Env == "development"
}

func (c *Config) Validate() error {
	if c.DBDSN == "" {
		return errors.New("DB_DSN is not set")
	}
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET is not set")
	}
	if c.SessionSecret == insecureSessionSecret && !c.Development() {
		return errors.New("SESSION_SECRET uses the placeholder value outside development")
	}
	if c.Intake.RatePerMinute < 0 || c.Intake.Burst < 0 {
		return errors.New("intake rate and burst must not be negative")
	}
	if c.Seed.Enabled && len(c.Seed.Password) < 4 {
		return errors.New("SEED_PASSWORD must be at least 4 characters")
	}
	if c.Seed.Enabled && c.Seed.Password == defaultSeedPassword && !c.Development() {
		return errors.New("SEED_PASSWORD uses the default value outside development")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}
