package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	log := NewLogger("info", "json")

	assert.NotNil(t, log)
	assert.Implements(t, (*Logger)(nil), log)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, parseLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, parseLevel("warn"))
	assert.Equal(t, logrus.ErrorLevel, parseLevel("error"))
	assert.Equal(t, logrus.InfoLevel, parseLevel("info"))
	assert.Equal(t, logrus.InfoLevel, parseLevel("unknown"))
}

func TestLoggerDoesNotPanic(t *testing.T) {
	for _, format := range []string{"json", "text"} {
		log := NewLogger("debug", format)
		assert.NotPanics(t, func() {
			log.Debug("debug message")
			log.Debugf("debug %s", "message")
			log.Info("info message")
			log.Infof("info %s", "message")
			log.Warn("warn message")
			log.Warnf("warn %s", "message")
			log.Error("error message")
			log.Errorf("error %s", "message")
		})
	}
}
