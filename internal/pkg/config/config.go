package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config - configuration complète de l'application
type Config struct {
	Server    ServerConfig    `envPrefix:"SERVER_"`
	Redis     RedisConfig     `envPrefix:"REDIS_"`
	Slack     SlackConfig     `envPrefix:"SLACK_"`
	Scheduler SchedulerConfig `envPrefix:"SCHEDULER_"`
	Logger    LoggerConfig    `envPrefix:"LOG_"`

	// SeedFile - fichier YAML chargé au démarrage (optionnel)
	SeedFile string `env:"SEED_FILE"`
	// ExportDir - répertoire des exports Excel
	ExportDir string `env:"EXPORT_DIR" envDefault:"exports"`
}

// ServerConfig - serveur HTTP (cmd/api)
type ServerConfig struct {
	Host         string        `env:"HOST" envDefault:"0.0.0.0"`
	Port         string        `env:"PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
}

// RedisConfig - diffusion des notifications et cache du compteur de non lues
type RedisConfig struct {
	Enabled  bool   `env:"ENABLED" envDefault:"false"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	Channel  string `env:"CHANNEL" envDefault:"motofleet:notifications"`
}

// SlackConfig - webhook entrant; vide = désactivé
type SlackConfig struct {
	WebhookURL string `env:"WEBHOOK_URL"`
}

// SchedulerConfig - tâches périodiques de cmd/api
type SchedulerConfig struct {
	Enabled        bool          `env:"ENABLED" envDefault:"true"`
	ReminderCron   string        `env:"REMINDER_CRON" envDefault:"0 8 * * *"`
	StockAlertCron string        `env:"STOCK_ALERT_CRON" envDefault:"0 * * * *"`
	JobTimeout     time.Duration `env:"JOB_TIMEOUT" envDefault:"1m"`
}

// LoggerConfig - journalisation
type LoggerConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"json"`   // json ou console
	Output string `env:"OUTPUT" envDefault:"stdout"` // stdout, stderr ou chemin de fichier
}

// Load charge .env s'il existe puis lit les variables d'environnement
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Address renvoie l'adresse d'écoute du serveur
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// Address renvoie l'adresse de Redis
func (c *RedisConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
