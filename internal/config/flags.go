package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/raidtracker/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the SQLite database file
//	-l string   log level
//	-b string   backup driver (fs, s3, empty disables)
//	-o string   backup directory for the fs driver
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-b", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the SQLite database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.BackupDriver, "b", cfg.BackupDriver, "backup driver (fs, s3, empty disables)")
	fs.StringVar(&cfg.BackupDir, "o", cfg.BackupDir, "backup directory for the fs driver")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
