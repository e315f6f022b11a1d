package env

import (
	"go.uber.org/zap"
	"os"
)

// OrDefault return the value of an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	v := os.Getenv(env)
	if v == "" {
		log.Infow("config", "env", env, "status", "using default")
		return def
	}
	return v
}

// Must return the value of an env var, ending the process if it is empty
func Must(log *zap.SugaredLogger, env string) string {
	v := os.Getenv(env)
	if v == "" {
		log.Fatalw("config", "env", env, "status", "required env var not set")
	}
	return v
}
