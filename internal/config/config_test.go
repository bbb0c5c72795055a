package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/intseq/internal/boundary"
	"github.com/san-kum/intseq/internal/palette"
	"github.com/san-kum/intseq/internal/render"
	"github.com/san-kum/intseq/internal/schedule"
	"github.com/san-kum/intseq/internal/seq"
	"github.com/san-kum/intseq/internal/wave"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	rc, err := cfg.Render.ToRender()
	if err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	want := render.DefaultConfig()
	if rc != want {
		t.Errorf("ToRender() = %+v, want %+v", rc, want)
	}
	if cfg.Schedule.NewMax != 20 || !cfg.Schedule.Reverse {
		t.Errorf("unexpected schedule defaults: %+v", cfg.Schedule)
	}
}

func TestToRender_Sentinels(t *testing.T) {
	r := DefaultRender()
	r.Colors.ValueMin = 10
	r.Colors.ValueMax = 20
	r.Colors.RedMax = 100

	rc, err := r.ToRender()
	if err != nil {
		t.Fatalf("ToRender() error: %v", err)
	}
	if rc.Colors.Value != (palette.Span{Min: 10, Max: 20}) {
		t.Errorf("value span = %+v", rc.Colors.Value)
	}
	if rc.Colors.Red != (palette.Span{Min: 10, Max: 100}) {
		t.Errorf("red span = %+v", rc.Colors.Red)
	}
	if rc.Colors.Blue != (palette.Span{Min: 10, Max: 20}) {
		t.Errorf("blue span = %+v", rc.Colors.Blue)
	}
}

func TestToRender_Errors(t *testing.T) {
	tests := []struct {
		name string
		edit func(r *RenderConfig)
		want error
	}{
		{"mode", func(r *RenderConfig) { r.Mode = "spiral" }, render.ErrUnknownMode},
		{"boundary", func(r *RenderConfig) { r.Boundary = "teleport" }, boundary.ErrUnknownPolicy},
		{"rule", func(r *RenderConfig) { r.Rule = 256 }, ErrInvalidRule},
		{"size", func(r *RenderConfig) { r.Width = 0 }, render.ErrInvalidSize},
		{"range", func(r *RenderConfig) { r.Colors.ValueMin = 50; r.Colors.ValueMax = 10 }, palette.ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DefaultRender()
			tt.edit(&r)
			if _, err := r.ToRender(); !errors.Is(err, tt.want) {
				t.Errorf("ToRender() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intseq.yaml")

	cfg := DefaultConfig()
	cfg.Sequence = "1,2,3"
	cfg.Render.Mode = "meander"
	cfg.Render.Colors.GreenMin = 5
	cfg.Wave.Type = wave.Square
	cfg.Schedule.Sort = schedule.Ascending

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if got.Sequence != "1,2,3" || got.Render.Mode != "meander" {
		t.Errorf("round trip lost fields: %+v", got)
	}
	if got.Render.Colors.GreenMin != 5 || got.Render.Colors.RedMin != palette.Sentinel {
		t.Errorf("colors = %+v", got.Render.Colors)
	}
	if got.Wave.Type != wave.Square {
		t.Errorf("wave type = %v, want square", got.Wave.Type)
	}
	if got.Schedule.Sort != schedule.Ascending {
		t.Errorf("sort = %v, want ascending", got.Schedule.Sort)
	}
}

func TestLoad_Partial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	data := "render:\n  mode: run and turn\n  boundary: bounce\nwave:\n  type: sawtooth\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Render.Width != render.DefaultWidth {
		t.Errorf("width = %d, want default", cfg.Render.Width)
	}
	if cfg.Wave.Length != 100 || cfg.Wave.Type != wave.Sawtooth {
		t.Errorf("wave = %+v", cfg.Wave)
	}
	rc, err := cfg.Render.ToRender()
	if err != nil {
		t.Fatalf("ToRender() error: %v", err)
	}
	if rc.Mode != render.ModeRunTurn || rc.Boundary != boundary.Bounce {
		t.Errorf("mode/boundary = %v/%v", rc.Mode, rc.Boundary)
	}
}

func TestLoad_BadWaveType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("wave:\n  type: noise\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, wave.ErrUnknownType) {
		t.Errorf("Load() error = %v, want ErrUnknownType", err)
	}
}

func TestPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("ListPresets() = %v", names)
	}

	for _, name := range names {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Fatalf("GetPreset(%q) = nil", name)
		}
		if _, err := cfg.Render.ToRender(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
		if !cfg.UsesWave() {
			if _, err := seq.Parse(cfg.Sequence); err != nil {
				t.Errorf("preset %s sequence: %v", name, err)
			}
		}
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestGetPreset_Copy(t *testing.T) {
	a := GetPreset("rule30")
	a.Render.Rule = 90
	if Presets["rule30"].Render.Rule != 30 {
		t.Error("GetPreset returned shared state")
	}
}
