// Package config reads bot configuration from environment variables.
package config

import (
	"os"
	"strconv"
)

// Config holds runtime settings for the bot.
type Config struct {
	Debug            bool  // verbose engine logging to stderr
	ReminderPollSec  int   // interval of the due-reminder poll in the shell
	ActivityCapacity int   // activity log ring size
	Seed             int64 // fixed RNG seed; 0 means time-based
	UserName         string
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Debug:            false,
		ReminderPollSec:  30,
		ActivityCapacity: 50,
		Seed:             0,
	}
}

// Load reads configuration from CYBERBOT_* environment variables, falling
// back to defaults for any unset value.
func Load() Config {
	cfg := Default()

	if v := os.Getenv("CYBERBOT_DEBUG"); v != "" {
		cfg.Debug, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("CYBERBOT_REMINDER_POLL_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ReminderPollSec = n
		}
	}
	if v := os.Getenv("CYBERBOT_ACTIVITY_CAP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ActivityCapacity = n
		}
	}
	if v := os.Getenv("CYBERBOT_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = n
		}
	}
	if v := os.Getenv("CYBERBOT_NAME"); v != "" {
		cfg.UserName = v
	}

	return cfg
}
