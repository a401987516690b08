package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds environment-based settings.
type Config struct {
	ServerAddress string
	ScheduleDir   string // where schedule.json and its backups live
	CatalogPath   string // host library catalog file
	BackupKeep    int    // numbered backups retained after a save

	DatabaseURL    string // optional: archive accepted versions in Postgres
	MigrationsPath string

	RedisAddress  string // optional: cache the library catalog
	RedisUsername string
	RedisPassword string

	MQTTBrokerURL string // optional: announce accepted versions to players
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	dir := os.Getenv("SCHEDULE_DIR")
	if dir == "" {
		return nil, fmt.Errorf("SCHEDULE_DIR is required")
	}
	addr := os.Getenv("SERVER_ADDRESS")
	if addr == "" {
		addr = ":8080"
	}
	catalog := os.Getenv("CATALOG_PATH")
	if catalog == "" {
		catalog = filepath.Join(dir, "catalog.json")
	}
	keep := 10
	if v := os.Getenv("BACKUP_KEEP"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("BACKUP_KEEP must be a non-negative integer")
		}
		keep = n
	}
	migrations := os.Getenv("MIGRATIONS_PATH")
	if migrations == "" {
		migrations = "./migrations"
	}
	return &Config{
		ServerAddress:  addr,
		ScheduleDir:    dir,
		CatalogPath:    catalog,
		BackupKeep:     keep,
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: migrations,
		RedisAddress:   os.Getenv("REDIS_ADDRESS"),
		RedisUsername:  os.Getenv("REDIS_USERNAME"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		MQTTBrokerURL:  os.Getenv("MQTT_BROKER_URL"),
	}, nil
}
