package config

import (
	"strings"
	"unicode/utf8"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Sources SourcesConfig `yaml:"sources" mapstructure:"sources"`
	Plot    PlotConfig    `yaml:"plot" mapstructure:"plot"`
	Report  ReportConfig  `yaml:"report" mapstructure:"report"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// SourcesConfig names the default input files and how to decode them.
type SourcesConfig struct {
	Districts  string `yaml:"districts" mapstructure:"districts"`
	Voters     string `yaml:"voters" mapstructure:"voters"`
	Encoding   string `yaml:"encoding" mapstructure:"encoding"`
	SheetIndex int    `yaml:"sheet_index" mapstructure:"sheet_index"`
}

// PlotConfig configures district bar rendering.
type PlotConfig struct {
	DemSymbol string `yaml:"dem_symbol" mapstructure:"dem_symbol"`
	RepSymbol string `yaml:"rep_symbol" mapstructure:"rep_symbol"`
	Color     bool   `yaml:"color" mapstructure:"color"`
}

// ReportConfig configures the report command.
type ReportConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("GERRY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("sources.districts", "")
	v.SetDefault("sources.voters", "")
	v.SetDefault("sources.encoding", "utf-8")
	v.SetDefault("sources.sheet_index", 0)
	v.SetDefault("plot.dem_symbol", "D")
	v.SetDefault("plot.rep_symbol", "R")
	v.SetDefault("plot.color", false)
	v.SetDefault("report.format", "table")
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

// Validate checks values that Load cannot enforce through defaults.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Plot.DemSymbol) != 1 {
		return eris.Errorf("config: plot.dem_symbol must be a single character, got %q", c.Plot.DemSymbol)
	}
	if utf8.RuneCountInString(c.Plot.RepSymbol) != 1 {
		return eris.Errorf("config: plot.rep_symbol must be a single character, got %q", c.Plot.RepSymbol)
	}
	if c.Plot.DemSymbol == c.Plot.RepSymbol {
		return eris.New("config: plot.dem_symbol and plot.rep_symbol must differ")
	}
	if c.Sources.SheetIndex < 0 {
		return eris.Errorf("config: sources.sheet_index must be >= 0, got %d", c.Sources.SheetIndex)
	}
	switch strings.ToLower(c.Report.Format) {
	case "table", "yaml", "xlsx":
	default:
		return eris.Errorf("config: report.format %q is not one of table, yaml, xlsx", c.Report.Format)
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
