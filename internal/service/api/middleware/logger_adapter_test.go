package middleware

import (
	"bytes"
	"testing"

	applog "github.com/darkkaiser/monitoring-server/pkg/log"
	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestLogger() (Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return Logger{Logger: l}, &buf
}

func TestLogger_Level(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level applog.Level
		want  log.Lvl
	}{
		{applog.TraceLevel, log.DEBUG},
		{applog.DebugLevel, log.DEBUG},
		{applog.InfoLevel, log.INFO},
		{applog.WarnLevel, log.WARN},
		{applog.ErrorLevel, log.ERROR},
		{applog.FatalLevel, log.OFF},
		{applog.PanicLevel, log.OFF},
	}

	for _, tt := range tests {
		l, _ := newTestLogger()
		l.Logger.SetLevel(tt.level)
		assert.Equal(t, tt.want, l.Level(), tt.level.String())
	}
}

func TestLogger_SetLevel(t *testing.T) {
	t.Parallel()

	l, _ := newTestLogger()

	l.SetLevel(log.WARN)
	assert.Equal(t, applog.WarnLevel, l.Logger.Level)

	l.SetLevel(log.DEBUG)
	assert.Equal(t, applog.DebugLevel, l.Logger.Level)

	// OFF는 무시됩니다.
	l.SetLevel(log.OFF)
	assert.Equal(t, applog.DebugLevel, l.Logger.Level)
}

func TestLogger_Delegation(t *testing.T) {
	t.Parallel()

	l, buf := newTestLogger()

	l.Infof("서버 시작 (port=%d)", 5001)
	l.Warnj(log.JSON{"path": "/metrics"})
	l.Error("실패")

	out := buf.String()
	assert.Contains(t, out, "level=info msg=\"서버 시작 (port=5001)\"")
	assert.Contains(t, out, "level=warning path=/metrics")
	assert.Contains(t, out, "level=error msg=\"실패\"")

	assert.Equal(t, "", l.Prefix())
	assert.Same(t, buf, l.Output())
}
