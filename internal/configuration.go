package logstats

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

type Configuration struct {
	LogLevel string
}

func (c *Configuration) ReadFile(path string) error {
	cf, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open configuration file: %w", err)
	}
	defer cf.Close()

	return c.read(cf)
}

func (c *Configuration) read(r io.Reader) error {
	md, err := toml.NewDecoder(r).Decode(c)
	if err != nil {
		var terr toml.ParseError
		if errors.As(err, &terr) {
			return fmt.Errorf("failed to decode configuration file: %s", terr.ErrorWithUsage())
		}
		return fmt.Errorf("failed to decode configuration file: %w", err)
	}

	if ud := md.Undecoded(); len(ud) > 0 {
		ks := make([]string, 0, len(ud))
		for _, k := range ud {
			ks = append(ks, k.String())
		}
		return fmt.Errorf("unknown configuration key(s): %s", strings.Join(ks, ", "))
	}

	return nil
}

// Level returns the level of diagnostic log output. It defaults to info.
func (c *Configuration) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}

	l, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf(`invalid log level "%s": %w`, c.LogLevel, err)
	}

	return l, nil
}
