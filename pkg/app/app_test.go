package app

import (
	"image/color"
	"log"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/squareline/pkg/config"
	"github.com/decker502/squareline/pkg/embedded"
	"github.com/decker502/squareline/pkg/utils"
)

func initEmbedded(t *testing.T, doc string) {
	t.Helper()
	embedded.Init(fstest.MapFS{
		config.StageConfigPath: &fstest.MapFile{Data: []byte(doc)},
	})
	t.Cleanup(func() {
		embedded.Init(nil)
		log.SetOutput(os.Stderr)
		log.SetFlags(log.LstdFlags)
	})
}

func TestNewApp_EmbeddedConfig(t *testing.T) {
	t.Setenv("SQUARELINE_MOBILE_EMULATE", "")
	initEmbedded(t, "window:\n  width: 300\n  height: 600\n  title: test\n")

	a, err := NewApp(Config{Taps: utils.NoTaps})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}

	w, h := a.Layout(1920, 1080)
	if w != 300 || h != 600 {
		t.Errorf("Layout() = %dx%d, want 300x600", w, h)
	}
	if a.StageConfig().Nodes != 5 {
		t.Errorf("Nodes = %d, want 5", a.StageConfig().Nodes)
	}
	if a.IsVerbose() {
		t.Error("IsVerbose() = true, want false")
	}
}

func TestNewApp_ConfigFile(t *testing.T) {
	t.Setenv("SQUARELINE_MOBILE_EMULATE", "")
	initEmbedded(t, "")

	path := filepath.Join(t.TempDir(), "stage.yaml")
	if err := os.WriteFile(path, []byte("window:\n  width: 200\n  height: 400\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	a, err := NewApp(Config{ConfigPath: path, Taps: utils.NoTaps, Verbose: true})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	if w, h := a.Size(); w != 200 || h != 400 {
		t.Errorf("Size() = %dx%d, want 200x400", w, h)
	}
	if !a.IsVerbose() {
		t.Error("IsVerbose() = false, want true")
	}
}

func TestNewApp_InvalidConfig(t *testing.T) {
	t.Setenv("SQUARELINE_MOBILE_EMULATE", "")
	initEmbedded(t, "nodes: 0\n")

	if _, err := NewApp(Config{Taps: utils.NoTaps}); err == nil {
		t.Error("expected error for invalid embedded config")
	}
	if _, err := NewApp(Config{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestApp_LetterboxColor(t *testing.T) {
	t.Setenv("SQUARELINE_MOBILE_EMULATE", "")
	initEmbedded(t, "style:\n  foreColor: \"#000000\"\n  backColor: \"#102030\"\n  strokeFactor: 90\n  sizeFactor: 2.9\n")

	a, err := NewApp(Config{Taps: utils.NoTaps})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	want := color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}
	if got := a.letterboxColor(); got != want {
		t.Errorf("letterboxColor() = %v, want %v", got, want)
	}
}
