package core

import (
	"os"

	"github.com/sirupsen/logrus"
)

// EnvEnableDebug turns on diagnostic logging for every resolved chain.
//
// If the user sets the `NULLCHAIN_DEBUG` environment variable to a non-empty
// value, each failed resolution is logged at debug level to a logrus logger
// writing to stderr.
//
// Example:
//
//	NULLCHAIN_DEBUG=1 go test ./...
const (
	EnvEnableDebug = `NULLCHAIN_DEBUG`
)

func init() {
	configureFromEnv(Conf, os.Getenv)
}

func configureFromEnv(s Settings, getenv func(string) string) {
	if getenv(EnvEnableDebug) == "" {
		return
	}

	lg := logrus.New()
	lg.SetLevel(logrus.DebugLevel)
	s.SetLogger(lg)
	s.SetLogging(true)
}
