// Package config loads the run configuration from the environment. A local
// .env file is honored when present; every mail setting is optional and its
// absence degrades to "no email sent" rather than an error.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries everything a single run needs.
type Config struct {
	SMTPServer        string
	SMTPPort          string
	EmailUser         string
	EmailPassword     string
	NotificationEmail string

	StateFile string
	LogFile   string
	LogLevel  string
	DaysAhead int

	TwitterAPIKey       string
	TwitterAPISecret    string
	TwitterAccessToken  string
	TwitterAccessSecret string
}

// Load reads .env (ignored when missing) and then the process environment.
func Load() *Config {
	godotenv.Load()

	return &Config{
		SMTPServer:        getEnv("SMTP_SERVER", "smtp.gmail.com"),
		SMTPPort:          getEnv("SMTP_PORT", "587"),
		EmailUser:         os.Getenv("EMAIL_USER"),
		EmailPassword:     os.Getenv("EMAIL_PASSWORD"),
		NotificationEmail: os.Getenv("NOTIFICATION_EMAIL"),

		StateFile: getEnv("STATE_FILE", "notified_slots.json"),
		LogFile:   getEnv("LOG_FILE", "court_check.log"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		DaysAhead: getEnvInt("DAYS_AHEAD", 7),

		TwitterAPIKey:       os.Getenv("TWITTER_API_KEY"),
		TwitterAPISecret:    os.Getenv("TWITTER_API_SECRET"),
		TwitterAccessToken:  os.Getenv("TWITTER_ACCESS_TOKEN"),
		TwitterAccessSecret: os.Getenv("TWITTER_ACCESS_SECRET"),
	}
}

// TwitterConfigured reports whether all four Twitter credentials are set.
func (c *Config) TwitterConfigured() bool {
	return c.TwitterAPIKey != "" && c.TwitterAPISecret != "" &&
		c.TwitterAccessToken != "" && c.TwitterAccessSecret != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
