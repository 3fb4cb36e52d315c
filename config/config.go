package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/angas/pricepulse/logging"
	"github.com/spf13/viper"
)

type AppConfigApi struct {
	Address string
	Port    int16
	// If not assigned, the server will serve embedded files.
	// If assigned, the server will serve files from the directory,
	// that must contain a "static" and "templates" directory.
	// This is useful for development.
	WwwDir *string `mapstructure:"www_dir"`
	// Key used to sign the session cookie, a random key is generated if empty
	SessionKey string `mapstructure:"session_key"`
}

type AppConfigDatabase struct {
	Path string
	// How many days daily backup files should be stored before they gets deleted
	BackupRetentionDays *int `mapstructure:"backup_retention_days"`
}

func (d AppConfigDatabase) GetBackupRetentionDays() int {
	if d.BackupRetentionDays == nil {
		return 30
	}
	return *d.BackupRetentionDays
}

type AppConfigPrices struct {
	Source  string  `mapstructure:"source"`   // "hvakosterstrommen" or "nordpool", default: "hvakosterstrommen"
	BaseURL *string `mapstructure:"base_url"` // Overrides the source's default API URL
	Timeout *int    `mapstructure:"timeout"`  // Request timeout in seconds, default: 30
	RunAt   *string `mapstructure:"run_at"`   // When to fetch the new day's prices, default: "1 0 * * *"
}

func (p AppConfigPrices) GetSource() string {
	if p.Source == "" {
		return "hvakosterstrommen"
	}
	return strings.ToLower(p.Source)
}

func (p AppConfigPrices) GetBaseURL() string {
	if p.BaseURL == nil {
		return ""
	}
	return *p.BaseURL
}

func (p AppConfigPrices) GetTimeout() time.Duration {
	if p.Timeout == nil || *p.Timeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(*p.Timeout) * time.Second
}

func (p AppConfigPrices) GetRunAt() string {
	if p.RunAt == nil {
		return "1 0 * * *"
	}
	return *p.RunAt
}

// Initial values of the user's choices
type AppConfigUi struct {
	Region    *string  `mapstructure:"region"`    // "NO1".."NO5", default: "NO1"
	Appliance *string  `mapstructure:"appliance"` // "Washing", "Oven", "Heater", "Shower", default: "Washing"
	MaxPrice  *float64 `mapstructure:"max_price"` // Price limit in NOK/kWh, 0 disables, default: 1.28
	ShowGraph *bool    `mapstructure:"show_graph"`
}

type AppConfigConnectivity struct {
	// Seconds between probes, 0 disables probing, default: 15
	Interval *int `mapstructure:"interval"`
	// Consecutive failed probes before the connection is considered lost, default: 3
	LostAfter *int `mapstructure:"lost_after"`
	// URL to probe, default: the price API
	URL *string `mapstructure:"url"`
}

func (c AppConfigConnectivity) GetInterval() time.Duration {
	if c.Interval == nil {
		return 15 * time.Second
	}
	return time.Duration(*c.Interval) * time.Second
}

func (c AppConfigConnectivity) GetLostAfter() int {
	if c.LostAfter == nil {
		return 3
	}
	return *c.LostAfter
}

func (c AppConfigConnectivity) GetURL(fallback string) string {
	if c.URL == nil || *c.URL == "" {
		return fallback
	}
	return *c.URL
}

type AppConfigMqtt struct {
	Enabled  bool
	Host     string
	Port     int16
	Username string
	Password string
	Topic    string // Topic prefix, default: "pricepulse"
}

func (m AppConfigMqtt) GetTopic() string {
	if m.Topic == "" {
		return "pricepulse"
	}
	return strings.TrimRight(m.Topic, "/")
}

type AppConfigGui struct {
	// Timezone that decides which day's prices are shown, default: Europe/Oslo
	Timezone *string `mapstructure:"timezone"`
}

func (g AppConfigGui) GetTimezone() string {
	if g.Timezone == nil {
		return "Europe/Oslo"
	}
	return *g.Timezone
}

type AppConfigLogging struct {
	// Min log level for database : "DEBUG", "INFO", "WARN", "ERROR", default: "INFO"
	DbLevel *string `mapstructure:"db_level"`
	// Log attributes format: "TEXT", "JSON", default: "JSON"
	DbAttrsFormat *string `mapstructure:"db_attrs_format"`
	// Maximum number of log entries in the database, default: 10000
	DbMaxEntries *int `mapstructure:"db_max_entries"`
	// Min log level for database console: "DEBUG", "INFO", "WARN", "ERROR", default: "INFO"
	ConsoleLevel *string `mapstructure:"console_level"`
}

func (l AppConfigLogging) GetDbLevel() slog.Level {
	return logging.LevelFromString(l.DbLevel)
}

func (l AppConfigLogging) GetDbAttrsFormat() logging.LogAttrFormat {
	if l.DbAttrsFormat == nil {
		return logging.LogAttrFormatJSON
	}
	if strings.EqualFold(*l.DbAttrsFormat, "text") {
		return logging.LogAttrFormatText
	}
	return logging.LogAttrFormatJSON
}

func (l AppConfigLogging) GetDbMaxEntries() int {
	if l.DbMaxEntries == nil {
		return 10000
	}
	return *l.DbMaxEntries
}

func (l AppConfigLogging) GetConsoleLevel() slog.Level {
	return logging.LevelFromString(l.ConsoleLevel)
}

type AppConfig struct {
	Api          AppConfigApi
	Database     AppConfigDatabase
	Prices       AppConfigPrices       `mapstructure:"prices"`
	Ui           AppConfigUi           `mapstructure:"ui"`
	Connectivity AppConfigConnectivity `mapstructure:"connectivity"`
	Mqtt         AppConfigMqtt         `mapstructure:"mqtt"`
	Gui          AppConfigGui          `mapstructure:"gui"`
	Logging      AppConfigLogging      `mapstructure:"logging"`
}

func Load(path string) (*AppConfig, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("config")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api.port", 8080)
	v.SetDefault("database.path", "pricepulse.db")

	var c AppConfig

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}

	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config file: %w", err)
	}

	return &c, nil
}
