package config

import (
	"path/filepath"
	"time"
)

type (
	//Config holds everything the sync run needs. Keys match config.json fields and, with EnvPrefix, env variables
	Config struct {
		APIKey             string `mapstructure:"API_KEY"`
		APIBaseURL         string `mapstructure:"API_BASE_URL"`
		RootFolderID       string `mapstructure:"ROOT_FOLDER_ID"`
		SQLiteDBName       string `mapstructure:"SQLITE_DB_NAME"`
		LogDirMain         string `mapstructure:"LOG_DIR_MAIN"`
		HTTPTimeoutSeconds int    `mapstructure:"HTTP_TIMEOUT_SECONDS"`
		Verbose            bool   `mapstructure:"VERBOSE"`
		RecordRuns         bool   `mapstructure:"RECORD_RUNS"`
	}
)

//HTTPTimeout returns request timeout. Zero means no timeout
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

//EscapeBadFilepaths replaces possibly wrong separators in filepaths in case config file came from other filesystem.
//Useful to keep single-slashed Windows filepaths in json-encoded config
func (c *Config) EscapeBadFilepaths() {
	c.SQLiteDBName = escapePath(c.SQLiteDBName)
	c.LogDirMain = escapePath(c.LogDirMain)
}

func escapePath(p string) string {
	if p == "" {
		return p
	}
	return filepath.Clean(filepath.FromSlash(p))
}
