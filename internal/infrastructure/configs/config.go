package configs

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/hilthontt/pipeline-demo/internal/infrastructure/env"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	DefaultPort    = 3000
	DefaultVersion = "1.0.0"
	maxPort        = 65535
)

type Config struct {
	App     AppConfig     `koanf:"app"`
	HTTP    HTTPConfig    `koanf:"http"`
	Logger  LoggerConfig  `koanf:"logger"`
	Tracing TracingConfig `koanf:"tracing"`
	Metrics MetricsConfig `koanf:"metrics"`
}

type AppConfig struct {
	Name        string `koanf:"name"`
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"`
}

type HTTPConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr is the listen address in host:port form.
func (c HTTPConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

type LoggerConfig struct {
	Logger   string `koanf:"logger"`
	Encoding string `koanf:"encoding"`
	Level    string `koanf:"level"`
	FilePath string `koanf:"file_path"`
}

type TracingConfig struct {
	Endpoint string `koanf:"endpoint"`
}

type MetricsConfig struct {
	Enabled bool `koanf:"enabled"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Load from YAML file if it exists
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	applyDefaults(k)
	applyEnvOverrides(k)

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if !validPort(cfg.HTTP.Port) {
		return nil, fmt.Errorf("invalid http.port %d: must be between 1 and %d", cfg.HTTP.Port, maxPort)
	}

	return &cfg, nil
}

func applyDefaults(k *koanf.Koanf) {
	setDefault(k, "app.name", "pipeline-demo")
	setDefault(k, "app.version", DefaultVersion)
	setDefault(k, "app.environment", "development")

	setDefault(k, "http.host", "0.0.0.0")
	setDefault(k, "http.port", DefaultPort)
	setDefault(k, "http.read_timeout", 10*time.Second)
	setDefault(k, "http.write_timeout", 30*time.Second)
	setDefault(k, "http.idle_timeout", time.Minute)
	setDefault(k, "http.shutdown_timeout", 5*time.Second)

	setDefault(k, "logger.logger", "zap")
	setDefault(k, "logger.encoding", "json")
	setDefault(k, "logger.level", "info")
	setDefault(k, "logger.file_path", "")

	setDefault(k, "tracing.endpoint", "")
	setDefault(k, "metrics.enabled", false)
}

func applyEnvOverrides(k *koanf.Koanf) {
	// PORT is the only setting the platform is expected to pass in. Anything
	// that is not a usable port number is ignored.
	if port := env.GetInt("PORT", 0); validPort(port) {
		k.Set("http.port", port)
	}
	if host := env.GetString("HTTP_HOST", ""); host != "" {
		k.Set("http.host", host)
	}
	if timeout := env.GetDuration("HTTP_SHUTDOWN_TIMEOUT", 0); timeout > 0 {
		k.Set("http.shutdown_timeout", timeout)
	}

	if version := env.GetString("APP_VERSION", ""); version != "" {
		k.Set("app.version", version)
	}
	if environment := env.GetString("ENVIRONMENT", ""); environment != "" {
		k.Set("app.environment", environment)
	}

	if logger := env.GetString("LOGGER_LOGGER", ""); logger != "" {
		k.Set("logger.logger", logger)
	}
	if encoding := env.GetString("LOGGER_ENCODING", ""); encoding != "" {
		k.Set("logger.encoding", encoding)
	}
	if level := env.GetString("LOGGER_LEVEL", ""); level != "" {
		k.Set("logger.level", level)
	}
	if filePath := env.GetString("LOGGER_FILE_PATH", ""); filePath != "" {
		k.Set("logger.file_path", filePath)
	}

	if endpoint := env.GetString("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", ""); endpoint != "" {
		k.Set("tracing.endpoint", endpoint)
	}
	k.Set("metrics.enabled", env.GetBool("METRICS_ENABLED", k.Bool("metrics.enabled")))
}

// setDefault only sets the value if the key doesn't already exist
func setDefault(k *koanf.Koanf, key string, value any) {
	if !k.Exists(key) {
		k.Set(key, value)
	}
}

func validPort(port int) bool {
	return port > 0 && port <= maxPort
}
