package config

import (
	"os"
	"time"
)

type Config struct {
	Port string

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	SMTPAddress  string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:             "9446",
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		SMTPAddress:      "localhost",
		SMTPPort:         "1025",
		SMTPFrom:         "noreply@finance-tracker.local",
		JWTSecret:        "local-development-secret",
		AccessTokenTTL:   time.Duration(15) * time.Minute,
		RefreshTokenTTL:  time.Duration(7*24) * time.Hour,
	}

	setIfPresent := func(target *string, key string) {
		value := os.Getenv(key)
		if len(value) != 0 {
			*target = value
		}
	}

	setIfPresent(&env.Port, "PORT")
	setIfPresent(&env.PostgresAddress, "POSTGRES_ADDRESS")
	setIfPresent(&env.PostgresPort, "POSTGRES_PORT")
	setIfPresent(&env.PostgresDB, "POSTGRES_DB")
	setIfPresent(&env.PostgresUsername, "POSTGRES_USERNAME")
	setIfPresent(&env.PostgresPassword, "POSTGRES_PASSWORD")
	setIfPresent(&env.SMTPAddress, "SMTP_ADDRESS")
	setIfPresent(&env.SMTPPort, "SMTP_PORT")
	setIfPresent(&env.SMTPUsername, "SMTP_USERNAME")
	setIfPresent(&env.SMTPPassword, "SMTP_PASSWORD")
	setIfPresent(&env.SMTPFrom, "SMTP_FROM")
	setIfPresent(&env.JWTSecret, "JWT_SECRET")

	if ttl := os.Getenv("ACCESS_TOKEN_TTL"); len(ttl) != 0 {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, err
		}
		env.AccessTokenTTL = parsed
	}

	if ttl := os.Getenv("REFRESH_TOKEN_TTL"); len(ttl) != 0 {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, err
		}
		env.RefreshTokenTTL = parsed
	}

	return &env, nil
}

// PostgresURL builds the connection string for both the server and the
// migration runner.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" + c.PostgresPassword +
		"@" + c.PostgresAddress + ":" + c.PostgresPort + "/" + c.PostgresDB +
		"?sslmode=disable"
}
