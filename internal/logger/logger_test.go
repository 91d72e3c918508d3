package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name          string
		level         Level
		logFunc       func(Logger, string)
		expectedInLog bool
	}{
		{
			name:          "debug message when level is debug",
			level:         LevelDebug,
			logFunc:       func(l Logger, msg string) { l.Debug(msg) },
			expectedInLog: true,
		},
		{
			name:          "debug message when level is info",
			level:         LevelInfo,
			logFunc:       func(l Logger, msg string) { l.Debug(msg) },
			expectedInLog: false,
		},
		{
			name:          "warn message when level is error",
			level:         LevelError,
			logFunc:       func(l Logger, msg string) { l.Warn(msg) },
			expectedInLog: false,
		},
		{
			name:          "error message when level is error",
			level:         LevelError,
			logFunc:       func(l Logger, msg string) { l.Error(msg) },
			expectedInLog: true,
		},
		{
			name:          "nothing when silent",
			level:         LevelSilent,
			logFunc:       func(l Logger, msg string) { l.Error(msg) },
			expectedInLog: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewLogger(tt.level, buf)

			tt.logFunc(logger, "step finished")

			if got := strings.Contains(buf.String(), "step finished"); got != tt.expectedInLog {
				t.Errorf("expected message in log: %v, got: %v (output: %s)", tt.expectedInLog, got, buf.String())
			}
		})
	}
}

func TestLogger_Fields(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLogger(LevelDebug, buf).(*standardLogger)
	l.now = func() time.Time { return time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC) }

	child := l.WithFields(F("project", "my-app"))
	child.Info("staged files", F("count", 14))

	want := "09:30:00 [INFO] staged files | project=my-app count=14\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestLogger_SetLevelSharedWithChildren(t *testing.T) {
	buf := &bytes.Buffer{}
	parent := NewLogger(LevelInfo, buf)
	child := parent.WithFields(F("rule", "addProject"))

	parent.SetLevel(LevelDebug)
	child.Debug("running")

	if !strings.Contains(buf.String(), "running") {
		t.Errorf("child did not pick up debug level: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"":        LevelInfo,
		"Warning": LevelWarn,
		"error":   LevelError,
		"off":     LevelSilent,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil {
			t.Errorf("ParseLevel(%q) error = %v", in, err)
		}
		if got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) expected error")
	}
}

func TestDefault(t *testing.T) {
	buf := &bytes.Buffer{}
	prev := Default()
	defer SetDefault(prev)

	SetDefault(NewLogger(LevelInfo, buf))
	Info("from default")

	if !strings.Contains(buf.String(), "from default") {
		t.Errorf("default logger not used: %q", buf.String())
	}
}
