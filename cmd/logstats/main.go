package main

import (
	"flag"
	"os"
	"runtime/debug"
	"strings"

	logstats "github.com/bitflipp/logstats/internal"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	version = "unknown version"
)

// logStartup logs where the binary came from. Reports own stdout, so this
// only ever reaches stderr.
func logStartup() {
	ev := log.Info().Str("version", version)
	if bi, ok := debug.ReadBuildInfo(); ok {
		ev = ev.Str("goVersion", bi.GoVersion).Str("module", bi.Main.Path)
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision", "vcs.time":
				ev = ev.Str(strings.TrimPrefix(s.Key, "vcs."), s.Value)
			case "vcs.modified":
				ev = ev.Bool("dirty", s.Value == "true")
			}
		}
	}

	ev.Msg("starting logstats")
}

func main() {
	cfp := flag.String("c", "", "Path to optional TOML configuration file")
	flag.Parse()

	c := &logstats.Configuration{}
	if *cfp != "" {
		if err := c.ReadFile(*cfp); err != nil {
			log.Fatal().Err(err).Msg("failed to read configuration file")
		}
	}
	l, err := c.Level()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to apply configuration")
	}
	zerolog.SetGlobalLevel(l)

	logStartup()

	rn := logstats.NewRunner(os.Stdin, os.Stdout)
	rn.Run()
}
