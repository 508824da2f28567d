package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig           `envconfig:"APP"`
	HttpServer    HttpServerConfig    `envconfig:"HTTP_SERVER"`
	Database      DatabaseConfig      `envconfig:"DB"`
	Redis         RedisConfig         `envconfig:"REDIS"`
	HttpClient    HttpClientConfig    `envconfig:"HTTP_CLIENT"`
	MessageStream MessageStreamConfig `envconfig:"AMQP"`
	Stripe        StripeConfig        `envconfig:"STRIPE"`
	Mail          MailConfig          `envconfig:"MAIL"`
	Places        PlacesConfig        `envconfig:"PLACES"`
	Admin         AdminConfig         `envconfig:"ADMIN"`
	Scheduler     SchedulerConfig     `envconfig:"SCHEDULER"`
}

type AppConfig struct {
	Name    string `envconfig:"NAME" default:"limo-booking-service"`
	Env     string `envconfig:"ENV" default:"development"`
	SiteURL string `envconfig:"SITE_URL" default:"https://monttremblantlimoservices.com"`
}

type HttpServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"20s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"20s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"HOST" default:"localhost"`
	Port            string        `envconfig:"PORT" default:"5432"`
	User            string        `envconfig:"USER" default:"postgres"`
	Password        string        `envconfig:"PASSWORD"`
	Name            string        `envconfig:"NAME" default:"bookings"`
	SSLMode         string        `envconfig:"SSL_MODE" default:"require"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"25"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"10m"`
}

// DSN returns the lib/pq connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type RedisConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// HttpClientConfig configures the circuit breaker wrapped client shared by
// the payment gateway, mail and places adapters.
type HttpClientConfig struct {
	// Type is one of threshold, consecutive or rate.
	Type       string        `envconfig:"TYPE" default:"consecutive"`
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"10s"`
	Threshold  int64         `envconfig:"THRESHOLD" default:"5"`
	Rate       float64       `envconfig:"RATE" default:"0.5"`
	MinSamples int64         `envconfig:"MIN_SAMPLES" default:"20"`
}

type MessageStreamConfig struct {
	Enabled  bool   `envconfig:"ENABLED" default:"false"`
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5672"`
	Username string `envconfig:"USERNAME" default:"guest"`
	Password string `envconfig:"PASSWORD" default:"guest"`
}

func (c *MessageStreamConfig) URI() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", c.Username, c.Password, c.Host, c.Port)
}

type StripeConfig struct {
	BaseURL            string        `envconfig:"BASE_URL" default:"https://api.stripe.com"`
	SecretKey          string        `envconfig:"SECRET_KEY"`
	WebhookSecret      string        `envconfig:"WEBHOOK_SECRET"`
	SignatureTolerance time.Duration `envconfig:"SIGNATURE_TOLERANCE" default:"5m"`
	SessionTTL         time.Duration `envconfig:"SESSION_TTL" default:"35m"`
	EventMarkerTTL     time.Duration `envconfig:"EVENT_MARKER_TTL" default:"72h"`
	ProductName        string        `envconfig:"PRODUCT_NAME" default:"Mont Tremblant Limo Booking"`
}

type MailConfig struct {
	BaseURL       string `envconfig:"BASE_URL" default:"https://api.resend.com"`
	APIKey        string `envconfig:"API_KEY"`
	From          string `envconfig:"FROM"`
	OperatorEmail string `envconfig:"OPERATOR_EMAIL"`
}

type PlacesConfig struct {
	BaseURL         string        `envconfig:"BASE_URL" default:"https://maps.googleapis.com/maps/api/place"`
	APIKey          string        `envconfig:"API_KEY"`
	AutocompleteTTL time.Duration `envconfig:"AUTOCOMPLETE_TTL" default:"120s"`
	DetailsTTL      time.Duration `envconfig:"DETAILS_TTL" default:"600s"`
}

type AdminConfig struct {
	PasswordHash string        `envconfig:"PASSWORD_HASH"`
	JWTSecret    string        `envconfig:"JWT_SECRET"`
	SessionTTL   time.Duration `envconfig:"SESSION_TTL" default:"12h"`
	CookieSecure bool          `envconfig:"COOKIE_SECURE" default:"true"`
}

type SchedulerConfig struct {
	Concurrency       int    `envconfig:"CONCURRENCY" default:"10"`
	MonitoringEnabled bool   `envconfig:"MONITORING_ENABLED" default:"false"`
	MonitoringPort    string `envconfig:"MONITORING_PORT" default:"8081"`
}

// InitConfig reads an optional .env file and then the process environment.
func InitConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded, using process environment")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	return &cfg
}
