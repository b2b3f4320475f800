package server

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/hydro-api/pkg/config/env"
	"github.com/DjordjeVuckovic/hydro-api/pkg/utils"
)

type Config struct {
	Port        string
	UseHttp2    bool
	CorsOrigins []string
	// HealthTimeout bounds a single run of all health checks.
	HealthTimeout time.Duration
}

// LoadConfig reads the server settings from the environment. Load the .env
// file first with env.LoadDotEnv.
func LoadConfig() (*Config, error) {
	port := env.String("PORT", "8080")
	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := utils.SplitList(os.Getenv("CORS_ORIGINS"))
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	healthTimeout, err := env.Duration("HEALTH_TIMEOUT", 2*time.Second)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:          port,
		UseHttp2:      env.Bool("USE_HTTP2"),
		CorsOrigins:   origins,
		HealthTimeout: healthTimeout,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
