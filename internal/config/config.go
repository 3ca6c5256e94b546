package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Isocs     IsocsConfig     `yaml:"isocs"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog" validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"required,oneof=debug info warn error"`
}

func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"POSTGRES_HOST"            env-default:"localhost" validate:"required"`
	Port            int           `yaml:"port"              env:"POSTGRES_PORT"            env-default:"5432"      validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"POSTGRES_USER"            env-default:"mcc_dbadmin" validate:"required"`
	Password        string        `yaml:"password"          env:"POSTGRES_PASSWORD"        env-default:"mcc_dbadmin" validate:"required"`
	Database        string        `yaml:"database"          env:"POSTGRES_DB"              env-default:"mcc"       validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"POSTGRES_SSLMODE"         env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"POSTGRES_MAX_OPEN_CONNS"  env-default:"10"        validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"POSTGRES_MAX_IDLE_CONNS"  env-default:"2"         validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"POSTGRES_CONN_MAX_LIFETIME" env-default:"30m"     validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// SchedulerConfig drives the outbox reconciler interval.
type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"30s" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken        string `yaml:"bot_token"         env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ApprovalsChatID int64  `yaml:"approvals_chat_id" env:"TELEGRAM_APPROVALS_CHAT_ID" env-default:"0"`
}

// IsocsConfig is the credential set for the Dhruva Space ISOCS-GSaaS API.
type IsocsConfig struct {
	BaseURL  string `yaml:"base_url" env:"ISOCS_BASE_URL" env-default:"https://demoapi.astraview.in" validate:"required"`
	Email    string `yaml:"email"    env:"ISOCS_EMAIL"    env-default:""`
	Password string `yaml:"password" env:"ISOCS_PASSWORD" env-default:""`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
