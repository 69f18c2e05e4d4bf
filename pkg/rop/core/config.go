package core

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/ib-77/nullchain/pkg/rop"
)

// Settings defines methods to get or set diagnostic settings, use core.Conf
// to get or set global configuration settings.
type Settings interface {
	// SetLogging enables or disables diagnostic logging.
	SetLogging(bool)
	// LoggingEnabled returns true if logging is enabled, false otherwise.
	LoggingEnabled() bool

	// SetLogger defines which logger to use.
	SetLogger(logrus.FieldLogger)
	// Logger returns the configured logger.
	Logger() logrus.FieldLogger
}

type loggerHolder struct {
	logger logrus.FieldLogger
}

type conf struct {
	loggingEnabled atomic.Bool
	logger         atomic.Pointer[loggerHolder]
}

func (c *conf) Logger() logrus.FieldLogger {
	if h := c.logger.Load(); h != nil {
		return h.logger
	}
	return nil
}

func (c *conf) SetLogger(lg logrus.FieldLogger) {
	if rop.IsNil(lg) {
		c.logger.Store(nil)
		return
	}
	c.logger.Store(&loggerHolder{logger: lg})
}

func (c *conf) SetLogging(value bool) {
	c.loggingEnabled.Store(value)
}

func (c *conf) LoggingEnabled() bool {
	return c.loggingEnabled.Load()
}

// NewSettings returns empty settings with logging disabled.
func NewSettings() Settings {
	return &conf{}
}

// Conf has global configuration settings for nullchain.
var Conf Settings = &conf{}
