package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"serverless-api-template/internal/model"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Collaborators
	Google    GoogleConfig
	Storage   StorageConfig
	Slack     SlackConfig
	Scheduler SchedulerConfig
}

type EnvironmentConfig struct {
	Name    string
	Offline bool
}

type HTTPServerConfig struct {
	Port      int
	Mode      string
	BodyLimit int64
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
}

type RateLimitConfig struct {
	Enabled bool
	PerMin  int
}

type GoogleConfig struct {
	ServiceAccountKey string // base64 encoded JSON key
	Subject           string // user impersonated through domain-wide delegation
}

type StorageConfig struct {
	Bucket         string
	Region         string
	Endpoint       string
	AccessKeyID    string
	SecretKey      string
	ForcePathStyle bool
}

type SlackConfig struct {
	OAuthToken           string
	Channel              string
	APIURL               string
	RetryAttempts        int
	RetryInitialInterval time.Duration
	RatePerSec           float64
}

type SchedulerConfig struct {
	DriveFolderID   string
	FilePrefix      string
	ArchiveFolderID string
	SpreadsheetID   string
	SheetRange      string
	HeaderLines     int
	InsertRange     string
	DeleteRange     string
	SnapshotPrefix  string
	PublishKey      string
}

// legacyEnv maps the variable names used by existing deployments onto
// config keys. They win over config.yaml.
var legacyEnv = map[string]string{
	"environment.name":           "STAGE",
	"environment.offline":        "IS_OFFLINE",
	"storage.region":             "REGION",
	"storage.bucket":             "AWS_S3_STORAGE_ID",
	"google.service_account_key": "GCP_SA_KEY",
	"slack.oauth_token":          "SLACK_BOT_OAUTH_TOKEN",
	"slack.channel":              "SLACK_BOT_POST_CHANNEL",
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, env := range legacyEnv {
		if err := v.BindEnv(key, strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.Environment.Offline = v.GetBool("environment.offline")
	if cfg.Environment.Offline {
		cfg.Environment.Name = string(model.EnvironmentOffline)
	}
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.BodyLimit = v.GetInt64("http_server.body_limit")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.CORS.AllowedOrigins = splitList(v, "cors.allowed_origins")
	cfg.CORS.AllowedMethods = splitList(v, "cors.allowed_methods")
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	// Collaborators
	cfg.Google.ServiceAccountKey = v.GetString("google.service_account_key")
	cfg.Google.Subject = v.GetString("google.subject")

	cfg.Storage.Bucket = v.GetString("storage.bucket")
	cfg.Storage.Region = v.GetString("storage.region")
	cfg.Storage.Endpoint = v.GetString("storage.endpoint")
	cfg.Storage.AccessKeyID = v.GetString("storage.access_key_id")
	cfg.Storage.SecretKey = v.GetString("storage.secret_key")
	cfg.Storage.ForcePathStyle = v.GetBool("storage.force_path_style")

	cfg.Slack.OAuthToken = v.GetString("slack.oauth_token")
	cfg.Slack.Channel = v.GetString("slack.channel")
	cfg.Slack.APIURL = v.GetString("slack.api_url")
	cfg.Slack.RetryAttempts = v.GetInt("slack.retry_attempts")
	cfg.Slack.RetryInitialInterval = v.GetDuration("slack.retry_initial_interval")
	cfg.Slack.RatePerSec = v.GetFloat64("slack.rate_per_sec")

	cfg.Scheduler.DriveFolderID = v.GetString("scheduler.drive_folder_id")
	cfg.Scheduler.FilePrefix = v.GetString("scheduler.file_prefix")
	cfg.Scheduler.ArchiveFolderID = v.GetString("scheduler.archive_folder_id")
	cfg.Scheduler.SpreadsheetID = v.GetString("scheduler.spreadsheet_id")
	cfg.Scheduler.SheetRange = v.GetString("scheduler.sheet_range")
	cfg.Scheduler.HeaderLines = v.GetInt("scheduler.header_lines")
	cfg.Scheduler.InsertRange = v.GetString("scheduler.insert_range")
	cfg.Scheduler.DeleteRange = v.GetString("scheduler.delete_range")
	cfg.Scheduler.SnapshotPrefix = v.GetString("scheduler.snapshot_prefix")
	cfg.Scheduler.PublishKey = v.GetString("scheduler.publish_key")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if !model.Environment(cfg.Environment.Name).IsValid() {
		return fmt.Errorf("invalid environment.name %q", cfg.Environment.Name)
	}
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("invalid http_server.port %d", cfg.HTTPServer.Port)
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.PerMin <= 0 {
		return fmt.Errorf("rate_limit.per_min must be positive when rate limiting is enabled")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("environment.offline", false)
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.body_limit", 100*1024)
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("cors.allowed_methods", "GET,POST,OPTIONS")
	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.per_min", 60)
	v.SetDefault("storage.region", "ap-northeast-1")
	v.SetDefault("slack.api_url", "https://slack.com/api")
	v.SetDefault("slack.retry_attempts", 5)
	v.SetDefault("slack.retry_initial_interval", "2s")
	v.SetDefault("slack.rate_per_sec", 1.0)
	v.SetDefault("scheduler.header_lines", 1)
	v.SetDefault("scheduler.snapshot_prefix", "snapshots/")
}

// splitList reads a list that may come from YAML or a comma-separated env var.
func splitList(v *viper.Viper, key string) []string {
	var raw []string
	switch val := v.Get(key).(type) {
	case []interface{}:
		for _, item := range val {
			raw = append(raw, fmt.Sprint(item))
		}
	case []string:
		raw = val
	default:
		raw = strings.Split(v.GetString(key), ",")
	}

	var out []string
	for _, item := range raw {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
