package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Redis     RedisConfig
	AMQP      AMQPConfig
	Tracing   TracingConfig
	RateLimit RateLimitConfig
	Schedule  ScheduleConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// Empty Addr disables the availability cache.
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	PoolSize int           `envconfig:"REDIS_POOL_SIZE" default:"10"`
	TTL      time.Duration `envconfig:"REDIS_AVAILABILITY_TTL" default:"2m"`
}

// Empty URL disables event publishing.
type AMQPConfig struct {
	URL      string `envconfig:"AMQP_URL"`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"padel.events"`
}

// Empty Endpoint disables tracing.
type TracingConfig struct {
	Endpoint    string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"padel-club"`
	Environment string `envconfig:"APP_ENV" default:"dev"`
}

type RateLimitConfig struct {
	Enabled bool    `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RPS     float64 `envconfig:"RATE_LIMIT_RPS" default:"2"`
	Burst   int     `envconfig:"RATE_LIMIT_BURST" default:"5"`
	// buckets untouched for this long are dropped
	IdleTTL time.Duration `envconfig:"RATE_LIMIT_IDLE_TTL" default:"10m"`
}

// ScheduleConfig describes the club's operating window. A YAML file named by
// SCHEDULE_FILE overrides the environment values.
type ScheduleConfig struct {
	File          string        `envconfig:"SCHEDULE_FILE" yaml:"-"`
	OpensAt       string        `envconfig:"SCHEDULE_OPENS_AT" default:"08:00" yaml:"opens_at"`
	LastStart     string        `envconfig:"SCHEDULE_LAST_START" default:"22:00" yaml:"last_start"`
	SlotMinutes   int           `envconfig:"SCHEDULE_SLOT_MINUTES" default:"90" yaml:"slot_minutes"`
	HorizonWeeks  int           `envconfig:"SCHEDULE_HORIZON_WEEKS" default:"4" yaml:"horizon_weeks"`
	TimeZone      string        `envconfig:"SCHEDULE_TIMEZONE" default:"America/Argentina/Buenos_Aires" yaml:"timezone"`
	SweepInterval time.Duration `envconfig:"SCHEDULE_SWEEP_INTERVAL" default:"1h" yaml:"sweep_interval"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c ScheduleConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}

	if cfg.Schedule.File != "" {
		if err := loadScheduleFile(cfg.Schedule.File, &cfg.Schedule); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

func loadScheduleFile(path string, sc *ScheduleConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read schedule file: %w", err)
	}
	var wrapper struct {
		Schedule ScheduleConfig `yaml:"schedule"`
	}
	wrapper.Schedule = *sc
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return fmt.Errorf("failed to parse schedule file: %w", err)
	}
	*sc = wrapper.Schedule
	return nil
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
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:5173"},
			AllowMethods: []string{"GET", "POST", "PATCH", "DELETE"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		},
		AMQP: AMQPConfig{Exchange: "padel.events"},
		RateLimit: RateLimitConfig{
			Enabled: false,
		},
		Schedule: ScheduleConfig{
			OpensAt:       "08:00",
			LastStart:     "22:00",
			SlotMinutes:   90,
			HorizonWeeks:  4,
			TimeZone:      "UTC",
			SweepInterval: time.Hour,
		},
	}
}
