package store

import (
	"github.com/kelseyhightower/envconfig"
)

// DBConfig is the database connection configuration, read from environment.
type DBConfig struct {
	Host       string `envconfig:"DB_HOST" default:"localhost"`
	Port       int    `envconfig:"DB_PORT" default:"3306"`
	Database   string `envconfig:"DB_NAME" default:"storemon"`
	Username   string `envconfig:"DB_USERNAME" default:"root"`
	Password   string `envconfig:"DB_PASSWORD"`
	LogQueries bool   `envconfig:"DB_LOG_QUERIES"`
}

// ReadDBConfig builds a DBConfig from the process environment.
func ReadDBConfig() (DBConfig, error) {
	var cfg DBConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
