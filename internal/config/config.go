package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Distance DistanceConfig `yaml:"distance" mapstructure:"distance"`
	Precheck PrecheckConfig `yaml:"precheck" mapstructure:"precheck"`
	Input    InputConfig    `yaml:"input" mapstructure:"input"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// DistanceConfig holds Google Distance Matrix settings.
type DistanceConfig struct {
	APIKey      string `yaml:"api_key" mapstructure:"api_key"`
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	BatchSize   int    `yaml:"batch_size" mapstructure:"batch_size"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	RateLimit   int    `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// PrecheckConfig configures the connectivity checks run before any data is processed.
type PrecheckConfig struct {
	NetworkURL        string `yaml:"network_url" mapstructure:"network_url"`
	SampleOrigin      string `yaml:"sample_origin" mapstructure:"sample_origin"`
	SampleDestination string `yaml:"sample_destination" mapstructure:"sample_destination"`
	TimeoutSecs       int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// InputConfig points at the employee and facility sources (CSV or XLSX).
type InputConfig struct {
	EmployeesPath  string `yaml:"employees_path" mapstructure:"employees_path"`
	FacilitiesPath string `yaml:"facilities_path" mapstructure:"facilities_path"`
}

// OutputConfig configures the report file.
type OutputConfig struct {
	Path  string `yaml:"path" mapstructure:"path"`
	Sheet string `yaml:"sheet" mapstructure:"sheet"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from .env, file and environment.
func Load() (*Config, error) {
	// A missing .env is normal; real environment variables still apply.
	_ = godotenv.Load()

	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("FACILITY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("distance.api_key", "")
	v.SetDefault("distance.base_url", "")
	v.SetDefault("distance.batch_size", 10)
	v.SetDefault("distance.timeout_secs", 30)
	v.SetDefault("distance.rate_limit", 10)
	v.SetDefault("precheck.network_url", "http://www.google.com")
	v.SetDefault("precheck.sample_origin", "New York,NY")
	v.SetDefault("precheck.sample_destination", "Los Angeles,CA")
	v.SetDefault("precheck.timeout_secs", 10)
	v.SetDefault("input.employees_path", "input.csv")
	v.SetDefault("input.facilities_path", "facilities.csv")
	v.SetDefault("output.path", "output.xlsx")
	v.SetDefault("output.sheet", "Results")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks that the fields needed by the given command are present.
// Mode is "run" (full pipeline) or "check" (connectivity checks only).
func (c *Config) Validate(mode string) error {
	var missing []string

	if c.Distance.APIKey == "" {
		missing = append(missing, "distance.api_key is required")
	}
	if c.Distance.BatchSize < 1 || c.Distance.BatchSize > 10 {
		missing = append(missing, "distance.batch_size must be between 1 and 10")
	}

	if mode == "run" {
		if c.Input.EmployeesPath == "" {
			missing = append(missing, "input.employees_path is required")
		}
		if c.Input.FacilitiesPath == "" {
			missing = append(missing, "input.facilities_path is required")
		}
		if c.Output.Path == "" {
			missing = append(missing, "output.path is required")
		}
	}

	if len(missing) > 0 {
		return eris.Errorf("config: %s", strings.Join(missing, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
