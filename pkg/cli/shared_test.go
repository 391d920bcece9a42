package cli

import (
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/dmgcanvas/dmgcanvas/pkg/logging"
)

func TestSetupLoggerDebug(t *testing.T) {
	logger := SetupLogger(true)

	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want %v", logger.GetLevel(), logrus.DebugLevel)
	}

	formatter, ok := logger.Formatter.(*logrus.TextFormatter)
	if !ok {
		t.Fatalf("formatter = %T, want *logrus.TextFormatter", logger.Formatter)
	}
	if !formatter.FullTimestamp {
		t.Error("debug formatter should enable full timestamps")
	}
}

func TestSetupLoggerDefault(t *testing.T) {
	logger := SetupLogger(false)

	if logger.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want %v", logger.GetLevel(), logrus.InfoLevel)
	}

	if _, ok := logger.Formatter.(*logging.BulletFormatter); !ok {
		t.Fatalf("formatter = %T, want *logging.BulletFormatter", logger.Formatter)
	}
}
