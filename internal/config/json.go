package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/raidtracker/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Values are
// copied into the runtime Config only when present, so a sparse file keeps
// the defaults for everything it does not mention.
type JsonConfig struct {
	DatabasePath string        `json:"database_path"`
	LogLevel     string        `json:"log_level"`
	BackupDriver string        `json:"backup_driver"`
	BackupDir    string        `json:"backup_dir"`
	BackupS3     *JsonS3Config `json:"backup_s3"`
}

// JsonS3Config mirrors backup.S3Config for JSON unmarshalling.
type JsonS3Config struct {
	Region          string `json:"region"`
	Bucket          string `json:"bucket"`
	Endpoint        string `json:"endpoint"`
	AccessKeyID     string `json:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key"`
	PathStyle       bool   `json:"path_style"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Panics on read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.BackupDriver != "" {
		cfg.BackupDriver = jc.BackupDriver
	}
	if jc.BackupDir != "" {
		cfg.BackupDir = jc.BackupDir
	}
	if jc.BackupS3 != nil {
		cfg.BackupS3.Region = jc.BackupS3.Region
		cfg.BackupS3.Bucket = jc.BackupS3.Bucket
		cfg.BackupS3.Endpoint = jc.BackupS3.Endpoint
		cfg.BackupS3.AccessKeyID = jc.BackupS3.AccessKeyID
		cfg.BackupS3.SecretAccessKey = jc.BackupS3.SecretAccessKey
		cfg.BackupS3.PathStyle = jc.BackupS3.PathStyle
	}
}
