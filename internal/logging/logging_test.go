package logging

import (
	"os"
	"path/filepath"
	"testing"

	"fitness_tracker/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"WARN":    logrus.WarnLevel,
		" error ": logrus.ErrorLevel,
		"":        logrus.InfoLevel,
		"chatty":  logrus.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestWriterStdoutOnly(t *testing.T) {
	assert.Equal(t, os.Stdout, Writer(config.LogConfig{}))
}

func TestSetupWritesToFile(t *testing.T) {
	prevOut, prevLevel, prevFormatter := logrus.StandardLogger().Out, logrus.GetLevel(), logrus.StandardLogger().Formatter
	t.Cleanup(func() {
		logrus.SetOutput(prevOut)
		logrus.SetLevel(prevLevel)
		logrus.SetFormatter(prevFormatter)
	})

	path := filepath.Join(t.TempDir(), "app.log")
	Setup(config.LogConfig{Level: "debug", Format: "json", File: path, MaxSizeMB: 1})
	logrus.WithField("user_id", 7).Debug("progress updated")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"progress updated"`)
	assert.Contains(t, string(data), `"user_id":7`)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}
