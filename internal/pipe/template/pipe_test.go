package template

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/dmgcanvas/dmgcanvas/pkg/config"
	dmgCtx "github.com/dmgcanvas/dmgcanvas/pkg/context"
)

func TestPipeWritesSVG(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	cfg := validConfig()
	cfg.Output = config.OutputConfig{Dir: t.TempDir(), SVG: "bg.svg", PNG: "bg.png"}

	ctx := dmgCtx.NewContext(context.Background(), cfg, logger)
	if err := (Pipe{}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if ctx.Artifacts.SVGPath != cfg.SVGPath() {
		t.Errorf("Artifacts.SVGPath = %q, want %q", ctx.Artifacts.SVGPath, cfg.SVGPath())
	}

	data, err := os.ReadFile(cfg.SVGPath())
	if err != nil {
		t.Fatalf("failed to read written SVG: %v", err)
	}

	doc := string(data)
	for _, want := range []string{"Swipey", "Drag to Applications", `width="540"`, `height="380"`} {
		if !strings.Contains(doc, want) {
			t.Errorf("written SVG missing %q", want)
		}
	}
}

func TestPipeOverwritesPriorOutput(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	cfg := validConfig()
	cfg.Output = config.OutputConfig{Dir: t.TempDir(), SVG: "bg.svg", PNG: "bg.png"}

	// Stale content from a prior run must be fully replaced
	if err := os.WriteFile(cfg.SVGPath(), []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx := dmgCtx.NewContext(context.Background(), cfg, logger)
	if err := (Pipe{}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(cfg.SVGPath())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "stale") {
		t.Error("Run() did not overwrite prior output")
	}
}

func TestPipeCreatesOutputDir(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	cfg := validConfig()
	cfg.Output = config.OutputConfig{Dir: t.TempDir() + "/nested/artwork", SVG: "bg.svg", PNG: "bg.png"}

	ctx := dmgCtx.NewContext(context.Background(), cfg, logger)
	if err := (Pipe{}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if _, err := os.Stat(cfg.SVGPath()); err != nil {
		t.Errorf("SVG not written into created directory: %v", err)
	}
}

func TestPipeString(t *testing.T) {
	p := Pipe{}
	expected := "writing SVG template"
	if got := p.String(); got != expected {
		t.Errorf("String() = %q, want %q", got, expected)
	}
}
