package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool `env:"TEST_MODE" envDefault:"false"`

	DatabasePath   string `env:"DATABASE_PATH" envDefault:"data/reminderbot.db"`
	BackupDir      string `env:"BACKUP_DIR" envDefault:"data/backups"`
	MaxBackupCount uint   `env:"MAX_BACKUP_COUNT" envDefault:"10"`

	SchedulerPollInterval time.Duration `env:"SCHEDULER_POLL_INTERVAL" envDefault:"1m"`
	SchedulerTickTimeout  time.Duration `env:"SCHEDULER_TICK_TIMEOUT" envDefault:"30s"`

	ReminderCategories []string `env:"REMINDER_CATEGORIES" envSeparator:"," envDefault:"Work,Personal,Fitness,Health,Shopping,Other"`

	TelegramToken          string        `env:"TELEGRAM_TOKEN"`
	TelegramBaseURL        url.URL       `env:"TELEGRAM_BASE_URL" envDefault:"https://api.telegram.org"`
	TelegramRequestTimeout time.Duration `env:"TELEGRAM_REQUEST_TIMEOUT" envDefault:"10s"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	if !config.IsTestMode && config.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN must be set")
	}
	return config, nil
}
