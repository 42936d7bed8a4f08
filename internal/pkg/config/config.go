package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, intervals, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Boards    BoardsConfig
	Scheduler SchedulerConfig
	SMTP      SMTPConfig
	Upload    UploadConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/London"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-User-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/London"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// BoardsConfig holds credentials and client settings for the external job
// board APIs. An adapter with empty credentials skips its fetch and
// contributes an empty page instead of failing the fan-out.
type BoardsConfig struct {
	AdzunaAppID     string `envconfig:"ADZUNA_APP_ID"`
	AdzunaAppKey    string `envconfig:"ADZUNA_API_KEY"`
	AdzunaCountry   string `envconfig:"ADZUNA_COUNTRY" default:"gb"`
	ReedAPIKey      string `envconfig:"REED_API_KEY"`
	ZipRecruiterKey string `envconfig:"ZIPRECRUITER_API_KEY"`
	ResultsPerPage  int    `envconfig:"BOARDS_RESULTS_PER_PAGE" default:"20"`
	// Applied to the shared outbound client. Zero means the net/http
	// default (no timeout).
	HTTPTimeout time.Duration `envconfig:"BOARDS_HTTP_TIMEOUT" default:"15s"`
}

type SchedulerConfig struct {
	RefreshInterval time.Duration `envconfig:"SCHED_REFRESH_INTERVAL" default:"6h"`
	StartupDelay    time.Duration `envconfig:"SCHED_STARTUP_DELAY" default:"5s"`
	KeywordPause    time.Duration `envconfig:"SCHED_KEYWORD_PAUSE" default:"2s"`
	KeywordsPerRun  int           `envconfig:"SCHED_KEYWORDS_PER_RUN" default:"5"`
	RotateKeywords  bool          `envconfig:"SCHED_ROTATE_KEYWORDS" default:"false"`
	CleanupSpec     string        `envconfig:"SCHED_CLEANUP_SPEC" default:"0 2 * * *"`
	DigestSpec      string        `envconfig:"SCHED_DIGEST_SPEC" default:"0 9 * * *"`
	MaxPostingAge   time.Duration `envconfig:"SCHED_MAX_POSTING_AGE" default:"720h"`
}

type SMTPConfig struct {
	Host     string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	User     string `envconfig:"SMTP_USER"`
	Password string `envconfig:"SMTP_PASSWORD"`
	From     string `envconfig:"SMTP_FROM"`
}

type UploadConfig struct {
	Dir         string `envconfig:"UPLOAD_DIR" default:"uploads"`
	MaxSizeByte int64  `envconfig:"UPLOAD_MAX_SIZE" default:"5242880"` // 5MB
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/London",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/London",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Boards: BoardsConfig{
			AdzunaCountry:  "gb",
			ResultsPerPage: 20,
			HTTPTimeout:    5 * time.Second,
		},
		Scheduler: SchedulerConfig{
			RefreshInterval: 6 * time.Hour,
			StartupDelay:    5 * time.Second,
			KeywordPause:    0,
			KeywordsPerRun:  5,
			CleanupSpec:     "0 2 * * *",
			DigestSpec:      "0 9 * * *",
			MaxPostingAge:   30 * 24 * time.Hour,
		},
		Upload: UploadConfig{
			Dir:         "uploads",
			MaxSizeByte: 5 << 20,
		},
	}
}
