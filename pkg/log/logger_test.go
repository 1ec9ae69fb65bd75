package log

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/gaussrank/pkg/errors"
)

func TestToLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{in: "debug", want: zerolog.DebugLevel},
		{in: "info", want: zerolog.InfoLevel},
		{in: "warn", want: zerolog.WarnLevel},
		{in: "error", want: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		if got := toLevel(tt.in); got != tt.want {
			t.Errorf("toLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestToLevelPanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("toLevel on unknown level should panic")
		}
	}()
	toLevel("verbose")
}

func TestSetupRoutesWarnings(t *testing.T) {
	Setup("warn")
	defer errors.SetZerologWarnFunc(nil)

	// must not panic; the warning goes through the zerolog path
	errors.Warn(errors.NewConstantFeatureWarning(0, 1.0, 10))
}

func TestGetLoggerWithName(t *testing.T) {
	logger := GetLoggerWithName("preprocessing")
	// smoke check: the component logger is usable at every level
	logger.Debug().Msg("debug")
	logger.Info().Msg("info")
}
