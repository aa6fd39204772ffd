package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		level    string
		expected logrus.Level
	}{
		{"", logrus.InfoLevel},
		{"debug", logrus.DebugLevel},
		{"WARN", logrus.WarnLevel},
		{"nonsense", logrus.InfoLevel},
	}

	for _, tt := range tests {
		l := newLogger(Options{Level: tt.level}, &bytes.Buffer{})
		assert.Equal(t, tt.expected, l.GetLevel(), "level %q", tt.level)
	}
}

func TestNewLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(Options{JSON: true}, &buf)

	l.WithField("task", "convert-1").Info("converted")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"task":"convert-1"`)
	assert.Contains(t, out, `"msg":"converted"`)
}

func TestLogger_Singleton(t *testing.T) {
	first := Logger()
	second := Setup(Options{Level: "debug"})
	assert.Same(t, first, second)
}
