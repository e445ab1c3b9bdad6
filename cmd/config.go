package cmd

import "time"

// Config carries everything the application reads from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string
	TokenTTL  time.Duration

	StatsPushSchedule  string
	StaleSweepSchedule string
	StaleThreshold     time.Duration
}
