package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lazycloud-app/go-doodsync/common/syncerr"
	"golang.org/x/term"
)

//PromptMissing asks for API key on terminal if config has none.
//Non-terminal input is left alone, Validate will report the missing key then
func PromptMissing(c *Config, in *os.File, out io.Writer) error {
	if c.APIKey != "" || !term.IsTerminal(int(in.Fd())) {
		return nil
	}

	fmt.Fprint(out, "Enter API key (text will not appear on screen) -> ")
	key, err := term.ReadPassword(int(in.Fd()))
	fmt.Fprintln(out)
	if err != nil {
		return syncerr.Config("[PromptMissing] reading API key", err)
	}

	c.APIKey = strings.TrimSpace(string(key))
	if c.APIKey == "" {
		return syncerr.Config("[PromptMissing] API key", errors.New("must not be empty"))
	}
	return nil
}
