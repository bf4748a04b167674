package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/lazycloud-app/go-doodsync/common/syncerr"
	"github.com/spf13/viper"
)

//EnvPrefix is prepended to every key when looking for env variables: DOODSYNC_API_KEY etc.
const EnvPrefix = "DOODSYNC"

var defaults = map[string]interface{}{
	"API_KEY":              "",
	"API_BASE_URL":         "https://doodapi.com/api",
	"ROOT_FOLDER_ID":       "0",
	"SQLITE_DB_NAME":       "dood.db",
	"LOG_DIR_MAIN":         "logs",
	"HTTP_TIMEOUT_SECONDS": 30,
	"VERBOSE":              false,
	"RECORD_RUNS":          true,
}

//Load reads config.json from dir (if there is one) and applies env variables on top of it.
//Every key has a default, so viper knows about all of them when looking into env
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("json")

	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, syncerr.Config("[Load] reading config", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, syncerr.Config("[Load] decoding config", err)
	}
	c.EscapeBadFilepaths()

	return &c, nil
}

//Validate checks that config is usable for a sync run
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return syncerr.Config("[Validate] API_KEY", errors.New("must not be empty"))
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return syncerr.Config("[Validate] API_BASE_URL", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return syncerr.Config("[Validate] API_BASE_URL", fmt.Errorf("want http(s) URL, got '%s'", c.APIBaseURL))
	}
	if c.RootFolderID == "" {
		return syncerr.Config("[Validate] ROOT_FOLDER_ID", errors.New("must not be empty"))
	}
	if c.SQLiteDBName == "" {
		return syncerr.Config("[Validate] SQLITE_DB_NAME", errors.New("must not be empty"))
	}
	if c.HTTPTimeoutSeconds < 0 {
		return syncerr.Config("[Validate] HTTP_TIMEOUT_SECONDS", fmt.Errorf("must not be negative, got %d", c.HTTPTimeoutSeconds))
	}
	return nil
}
