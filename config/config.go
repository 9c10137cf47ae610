package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Postgres   PostgresConfig

	OTP     OTPConfig
	Lending LendingConfig
	Notify  NotifyConfig
	Sweep   SweepConfig
	Admin   AdminConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN renders the lib/pq connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode)
}

type OTPConfig struct {
	CodeTTL          time.Duration
	SessionTTL       time.Duration
	IssuesPerMinute  int
	SessionCacheSize int
}

type LendingConfig struct {
	PendingHoldTTL      time.Duration
	DigitalWeeklyLimit  int
	DigitalMonthlyLimit int
}

type NotifyConfig struct {
	GatewayURL string
	APIKey     string
	Sender     string
}

type SweepConfig struct {
	Interval time.Duration
}

type AdminConfig struct {
	Email    string
	Phone    string
	Password string
	StaffKey string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.Database = viper.GetString("postgres.database")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	if pgPassword := viper.GetString("postgres_password"); pgPassword != "" {
		cfg.Postgres.Password = pgPassword
	}

	// OTP / sessions
	cfg.OTP.CodeTTL = viper.GetDuration("otp.code_ttl")
	cfg.OTP.SessionTTL = viper.GetDuration("otp.session_ttl")
	cfg.OTP.IssuesPerMinute = viper.GetInt("otp.issues_per_minute")
	cfg.OTP.SessionCacheSize = viper.GetInt("otp.session_cache_size")

	// Lending engine
	cfg.Lending.PendingHoldTTL = viper.GetDuration("lending.pending_hold_ttl")
	cfg.Lending.DigitalWeeklyLimit = viper.GetInt("lending.digital_weekly_limit")
	cfg.Lending.DigitalMonthlyLimit = viper.GetInt("lending.digital_monthly_limit")

	// Notification gateway
	cfg.Notify.GatewayURL = viper.GetString("notify.gateway_url")
	cfg.Notify.APIKey = viper.GetString("notify.api_key")
	cfg.Notify.Sender = viper.GetString("notify.sender")
	if notifyKey := viper.GetString("notify_api_key"); notifyKey != "" {
		cfg.Notify.APIKey = notifyKey
	}

	// Background sweep
	cfg.Sweep.Interval = viper.GetDuration("sweep.interval")

	// Admin bootstrap / staff auth
	cfg.Admin.Email = viper.GetString("admin.email")
	cfg.Admin.Phone = viper.GetString("admin.phone")
	cfg.Admin.Password = viper.GetString("admin.password")
	cfg.Admin.StaffKey = viper.GetString("admin.staff_key")
	if adminPassword := viper.GetString("admin_password"); adminPassword != "" {
		cfg.Admin.Password = adminPassword
	}
	if staffKey := viper.GetString("staff_key"); staffKey != "" {
		cfg.Admin.StaffKey = staffKey
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "library")
	viper.SetDefault("postgres.database", "library")
	viper.SetDefault("postgres.sslmode", "disable")

	viper.SetDefault("otp.code_ttl", 5*time.Minute)
	viper.SetDefault("otp.session_ttl", 30*time.Minute)
	viper.SetDefault("otp.issues_per_minute", 3)
	viper.SetDefault("otp.session_cache_size", 4096)

	viper.SetDefault("lending.pending_hold_ttl", 5*time.Hour)
	viper.SetDefault("lending.digital_weekly_limit", 2)
	viper.SetDefault("lending.digital_monthly_limit", 4)

	viper.SetDefault("sweep.interval", 10*time.Minute)
}
