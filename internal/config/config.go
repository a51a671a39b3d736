// Package config loads runtime configuration for the raid tracker CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path to the SQLite database file
//	-l string   log level (debug, info, warn, error)
//	-b string   backup driver: fs, s3 or empty to disable
//	-o string   backup directory for the fs driver
//
// S3 backup settings have no flag form; configure them through the JSON file:
//
//	{
//	  "database_path": "raidtracker.db",
//	  "backup_driver": "s3",
//	  "backup_s3": {"region": "eu-west-1", "bucket": "raid-backups"}
//	}
package config

import "github.com/dmitrijs2005/raidtracker/internal/backup"

// Config holds runtime settings for the tracker CLI.
type Config struct {
	DatabasePath string
	LogLevel     string
	BackupDriver string
	BackupDir    string
	BackupS3     backup.S3Config
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "raidtracker.db"
	c.LogLevel = "info"
	c.BackupDriver = ""
	c.BackupDir = "backups"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// BackupOptions maps the configuration onto the snapshot store factory input.
func (c *Config) BackupOptions() backup.Options {
	return backup.Options{
		Driver: backup.Driver(c.BackupDriver),
		Dir:    c.BackupDir,
		S3:     c.BackupS3,
	}
}
