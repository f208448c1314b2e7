package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, credentials, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	CORS    CORSConfig
	Log     LogConfig
	Cookie  CookieConfig
	Session SessionConfig
	Admin   AdminConfig
	Mail    MailConfig
	Rental  RentalConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

const (
	StorageDriverMemory   = "memory"
	StorageDriverFile     = "file"
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
	StorageDriverMongo    = "mongo"
)

type StorageConfig struct {
	Driver         string `envconfig:"STORAGE_DRIVER" default:"file"`
	FileDir        string `envconfig:"STORAGE_FILE_DIR" default:"./data"`
	SQLitePath     string `envconfig:"STORAGE_SQLITE_PATH" default:"rental.db"`
	CatalogSeed    string `envconfig:"CATALOG_SEED_FILE"`
	Postgres       PostgresConfig
	Mongo          MongoConfig
	ConnectTimeout time.Duration `envconfig:"STORAGE_CONNECT_TIMEOUT" default:"10s"`
}

type PostgresConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type MongoConfig struct {
	URI      string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	Database string `envconfig:"MONGO_DATABASE" default:"equipment_rental"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type SessionConfig struct {
	Secret   string `envconfig:"SESSION_SECRET" required:"true"`
	Duration string `envconfig:"SESSION_DURATION" default:"24h"`
}

type AdminConfig struct {
	Username string `envconfig:"ADMIN_USER" required:"true"`
	Password string `envconfig:"ADMIN_PASSWORD" required:"true"`
}

const (
	MailDriverSimulated = "simulated"
	MailDriverSMTP      = "smtp"
	MailDriverSendGrid  = "sendgrid"
)

type MailConfig struct {
	Driver         string        `envconfig:"MAIL_DRIVER" default:"simulated"`
	SimulatedDelay time.Duration `envconfig:"MAIL_SIMULATED_DELAY" default:"1s"`
	From           string        `envconfig:"MAIL_FROM" default:"rentals@example.com"`
	FromName       string        `envconfig:"MAIL_FROM_NAME" default:"Equipment Rental Team"`
	SMTPHost       string        `envconfig:"SMTP_HOST" default:"localhost"`
	SMTPPort       int           `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser       string        `envconfig:"SMTP_USER"`
	SMTPPassword   string        `envconfig:"SMTP_PASS"`
	SendGridAPIKey string        `envconfig:"SENDGRID_API_KEY"`
}

type RentalConfig struct {
	RequireTimes bool `envconfig:"RENTAL_REQUIRE_TIMES" default:"false"`
}

func (c *PostgresConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c SessionConfig) TokenDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Duration)
	if err != nil {
		return 0, fmt.Errorf("invalid SESSION_DURATION: %w", err)
	}
	return d, nil
}

// LoadConfig reads an optional .env file before processing the environment.
// Variables already present in the environment win over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

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
		Storage: StorageConfig{
			Driver:         StorageDriverMemory,
			ConnectTimeout: 5 * time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Session: SessionConfig{
			Secret:   "test-session-secret",
			Duration: "1h",
		},
		Admin: AdminConfig{
			Username: "admin",
			Password: "admin-pass",
		},
		Mail: MailConfig{
			Driver:   MailDriverSimulated,
			From:     "rentals@example.com",
			FromName: "Equipment Rental Team",
		},
	}
}
