package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, rates, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Providers  ProvidersConfig
	Generation GenerationConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
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

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// ProvidersConfig holds platform-level credentials for outbound integrations.
// User-supplied keys stored on profiles take precedence per request.
type ProvidersConfig struct {
	OpenAIBaseURL    string        `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com"`
	OpenAIKey        string        `envconfig:"OPENAI_API_KEY" default:""`
	StabilityKey     string        `envconfig:"STABILITY_API_KEY" default:""`
	MeshyKey         string        `envconfig:"MESHY_API_KEY" default:""`
	TripoKey         string        `envconfig:"TRIPO_API_KEY" default:""`
	AI3DStudioKey    string        `envconfig:"AI3DSTUDIO_API_KEY" default:""`
	Alpha3DKey       string        `envconfig:"ALPHA3D_API_KEY" default:""`
	SloydKey         string        `envconfig:"SLOYD_API_KEY" default:""`
	PonzuEndpoint    string        `envconfig:"PONZU_ENDPOINT" default:"http://localhost:8080"`
	StripeSecretKey  string        `envconfig:"STRIPE_SECRET_KEY" default:""`
	ElevenLabsKey    string        `envconfig:"ELEVEN_LABS_API_KEY" default:""`
	RequestTimeout   time.Duration `envconfig:"PROVIDER_REQUEST_TIMEOUT" default:"30s"`
	MaxRetries       uint64        `envconfig:"PROVIDER_MAX_RETRIES" default:"3"`
	RetryBaseBackoff time.Duration `envconfig:"PROVIDER_RETRY_BASE_BACKOFF" default:"500ms"`
}

// PlatformKeys maps generator names to the platform credential configured
// for them. Generators without a key are omitted.
func (c ProvidersConfig) PlatformKeys() map[string]string {
	keys := map[string]string{
		"meshy":      c.MeshyKey,
		"tripo":      c.TripoKey,
		"ai3dstudio": c.AI3DStudioKey,
		"alpha3d":    c.Alpha3DKey,
		"sloyd":      c.SloydKey,
		"stability":  c.StabilityKey,
		"openai":     c.OpenAIKey,
	}
	if c.PonzuEndpoint != "" {
		// Self-hosted, no bearer token; the endpoint itself is the credential.
		keys["ponzu"] = c.PonzuEndpoint
	}
	for name, key := range keys {
		if key == "" {
			delete(keys, name)
		}
	}
	return keys
}

type GenerationConfig struct {
	FreeQuota          int           `envconfig:"GENERATION_FREE_QUOTA" default:"5"`
	CompletionDeadline time.Duration `envconfig:"GENERATION_COMPLETION_DEADLINE" default:"15m"`
	PollInterval       time.Duration `envconfig:"GENERATION_POLL_INTERVAL" default:"10s"`
	CallLeadTime       time.Duration `envconfig:"AI_CALL_LEAD_TIME" default:"5m"`
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
			TimeZone: "UTC",
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
		Generation: GenerationConfig{
			FreeQuota:          5,
			CompletionDeadline: time.Minute,
			PollInterval:       time.Second,
			CallLeadTime:       time.Minute,
		},
	}
}
