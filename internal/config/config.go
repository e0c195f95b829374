package config

import (
	"fmt"
	"time"

	"github.com/Azonix07/gamespotbooking-v1-sub002/internal/domain"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Redis     RedisConfig     `yaml:"redis"     validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Venue     VenueConfig     `yaml:"venue"     validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
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
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"   validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"        validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"    validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"    validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"gamespot"    validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"     validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"          validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"           validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"          validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Addr     string        `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379" validate:"required"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int           `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
	SlotTTL  time.Duration `yaml:"slot_ttl" env:"REDIS_SLOT_TTL" env-default:"15s" validate:"gt=0"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"1m" validate:"required,gt=0"`
}

// VenueConfig describes the reference deployment: 3 console units, one
// simulator, a 10 player ceiling and a 30-minute slot grid.
type VenueConfig struct {
	OpenTime             string `yaml:"open_time"               env:"VENUE_OPEN_TIME"               env-default:"10:00" validate:"required"`
	CloseTime            string `yaml:"close_time"              env:"VENUE_CLOSE_TIME"              env-default:"22:00" validate:"required"`
	SlotStepMinutes      int    `yaml:"slot_step_minutes"       env:"VENUE_SLOT_STEP_MINUTES"       env-default:"30"    validate:"min=5"`
	ConsoleUnits         int    `yaml:"console_units"           env:"VENUE_CONSOLE_UNITS"           env-default:"3"     validate:"min=1"`
	SimulatorUnits       int    `yaml:"simulator_units"         env:"VENUE_SIMULATOR_UNITS"         env-default:"1"     validate:"min=1"`
	PlayerCeiling        int    `yaml:"player_ceiling"          env:"VENUE_PLAYER_CEILING"          env-default:"10"    validate:"min=1"`
	MaxPlayersPerConsole int    `yaml:"max_players_per_console" env:"VENUE_MAX_PLAYERS_PER_CONSOLE" env-default:"4"     validate:"min=1"`
}

func (v *VenueConfig) Hours() (domain.OperatingHours, error) {
	open, err := domain.ParseClock(v.OpenTime)
	if err != nil {
		return domain.OperatingHours{}, fmt.Errorf("open_time: %w", err)
	}
	closeMin, err := domain.ParseClock(v.CloseTime)
	if err != nil {
		return domain.OperatingHours{}, fmt.Errorf("close_time: %w", err)
	}
	if open >= closeMin {
		return domain.OperatingHours{}, fmt.Errorf("open_time %s must be before close_time %s", v.OpenTime, v.CloseTime)
	}
	return domain.OperatingHours{OpenMin: open, CloseMin: closeMin}, nil
}

func (v *VenueConfig) Inventory() domain.Inventory {
	return domain.Inventory{
		ConsoleUnits:         v.ConsoleUnits,
		SimulatorUnits:       v.SimulatorUnits,
		PlayerCeiling:        v.PlayerCeiling,
		MaxPlayersPerConsole: v.MaxPlayersPerConsole,
	}
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"   env-default:"0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
