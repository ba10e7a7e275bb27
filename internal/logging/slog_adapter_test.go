// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newBufferedSlog(buf *bytes.Buffer) *slog.Logger {
	return slog.New(&SlogHandler{logger: NewTestLogger(buf)})
}

func TestSlogHandlerLevels(t *testing.T) {
	cases := []struct {
		level slog.Level
		want  string
	}{
		{slog.LevelDebug, `"level":"debug"`},
		{slog.LevelInfo, `"level":"info"`},
		{slog.LevelWarn, `"level":"warn"`},
		{slog.LevelError, `"level":"error"`},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		newBufferedSlog(&buf).Log(context.Background(), tc.level, "msg")
		if !strings.Contains(buf.String(), tc.want) {
			t.Errorf("level %v output %s, want %s", tc.level, buf.String(), tc.want)
		}
	}
}

func TestSlogHandlerAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferedSlog(&buf)

	logger.Info("restarting", "service", "http-server", "attempt", int64(3))

	out := buf.String()
	if !strings.Contains(out, `"message":"restarting"`) {
		t.Errorf("output missing message: %s", out)
	}
	if !strings.Contains(out, `"service":"http-server"`) {
		t.Errorf("output missing string attr: %s", out)
	}
	if !strings.Contains(out, `"attempt":3`) {
		t.Errorf("output missing int attr: %s", out)
	}
}

func TestSlogHandlerWithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferedSlog(&buf).With("supervisor", "root").WithGroup("tree")

	logger.Info("event", "name", "api-layer")

	out := buf.String()
	if !strings.Contains(out, `"supervisor":"root"`) {
		t.Errorf("output missing carried attr: %s", out)
	}
	if !strings.Contains(out, `"tree.name":"api-layer"`) {
		t.Errorf("output missing group-prefixed attr: %s", out)
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	cases := []struct {
		in   slog.Level
		want zerolog.Level
	}{
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
		{slog.LevelError + 4, zerolog.ErrorLevel},
	}
	for _, tc := range cases {
		if got := slogToZerologLevel(tc.in); got != tc.want {
			t.Errorf("slogToZerologLevel(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
