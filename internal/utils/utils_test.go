package utils

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevels(t *testing.T) {
	cases := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"info":    logrus.InfoLevel,
		"warning": logrus.WarnLevel,
		"warn":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"fatal":   logrus.FatalLevel,
		"":        logrus.ErrorLevel,
		"verbose": logrus.ErrorLevel,
	}

	for level, want := range cases {
		require.Equal(t, want, newLogger(&bytes.Buffer{}, level).GetLevel(), level)
	}
}

func TestNewLoggerOutput(t *testing.T) {
	var buf bytes.Buffer

	l := newLogger(&buf, "info")
	l.WithField("aweme_id", "42").Info("fetched")
	l.Debug("hidden")

	require.Contains(t, buf.String(), "aweme_id=42")
	require.Contains(t, buf.String(), "fetched")
	require.NotContains(t, buf.String(), "hidden")
}

func TestStringNotEmptyCoalesce(t *testing.T) {
	require.Equal(t, "b", StringNotEmptyCoalesce("", "b", "c"))
	require.Equal(t, "", StringNotEmptyCoalesce("", ""))
	require.Equal(t, "", StringNotEmptyCoalesce())
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "при", Truncate("привет", 3))
	require.Equal(t, "short", Truncate("short", 64))
}
