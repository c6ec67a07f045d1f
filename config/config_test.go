package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/orrery/vmath"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	tmp := t.TempDir()
	path := filepath.Join(tmp, "orrery.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	return path
}

func requireErrEq(t *testing.T, err error, want string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %q, got nil", want)
	}
	if err.Error() != want {
		t.Fatalf("error=%q want %q", err.Error(), want)
	}
}

func TestLoad_EmptyFileGivesDefaults(t *testing.T) {
	path := writeTempConfig(t, "")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	def := Default()
	if cfg.FPS != def.FPS || cfg.TrailCapacity != 50 || cfg.AsteroidCount != 200 || cfg.StarCount != 5000 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if !cfg.RandomPhase {
		t.Fatalf("random_phase should default to true")
	}
	if cfg.Focus.Duration != 2*time.Second || cfg.Focus.SunDistance != 20 || cfg.Focus.BodyDistance != 15 {
		t.Fatalf("focus defaults = %+v", cfg.Focus)
	}
	if cfg.StartPosition() != (vmath.Vec3{X: 0, Y: 50, Z: 100}) {
		t.Fatalf("start = %+v", cfg.StartPosition())
	}
}

func TestLoad_PartialOverride(t *testing.T) {
	path := writeTempConfig(t, `
fps: 30
random_phase: false
camera:
  damping: 0.1
focus:
  duration: 500ms
metrics:
  addr: "127.0.0.1:9464"
keys:
  p: toggle_running
  space: none
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.FPS != 30 || cfg.FrameInterval() != time.Second/30 {
		t.Fatalf("fps=%d interval=%s", cfg.FPS, cfg.FrameInterval())
	}
	if cfg.RandomPhase {
		t.Fatalf("random_phase override ignored")
	}
	if cfg.Camera.Damping != 0.1 || cfg.Camera.MinDistance != 10 || cfg.Camera.FOVDeg != 75 {
		t.Fatalf("camera = %+v", cfg.Camera)
	}
	if cfg.Focus.Duration != 500*time.Millisecond || cfg.Focus.SunDistance != 20 {
		t.Fatalf("focus = %+v", cfg.Focus)
	}
	if cfg.Metrics.Addr != "127.0.0.1:9464" {
		t.Fatalf("metrics.addr=%q", cfg.Metrics.Addr)
	}
	if cfg.Keys["p"] != "toggle_running" || cfg.Keys["space"] != "none" {
		t.Fatalf("keys = %v", cfg.Keys)
	}
}

func TestLoad_Validation(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"fps zero", "fps: 0\n", "fps must be > 0"},
		{"trail capacity", "trail_capacity: -1\n", "trail_capacity must be > 0"},
		{"asteroids negative", "asteroid_count: -5\n", "asteroid_count must be >= 0"},
		{"stars negative", "star_count: -1\n", "star_count must be >= 0"},
		{"color mode", "color_mode: sixteen\n", "color_mode must be one of auto, 256, truecolor"},
		{"fov", "camera:\n  fov_deg: 180\n", "camera.fov_deg must be between 0 and 180"},
		{"start length", "camera:\n  start: [1, 2]\n", "camera.start must have 3 elements"},
		{"start at origin", "camera:\n  start: [0, 0, 0]\n", "camera.start must not be the origin"},
		{"min distance", "camera:\n  min_distance: 0\n", "camera.min_distance must be > 0"},
		{"max below min", "camera:\n  min_distance: 50\n  max_distance: 20\n", "camera.max_distance must be >= camera.min_distance"},
		{"damping", "camera:\n  damping: 1.5\n", "camera.damping must be in (0, 1]"},
		{"focus duration", "focus:\n  duration: -1s\n", "focus.duration must be >= 0"},
		{"sun distance", "focus:\n  sun_distance: 0\n", "focus.sun_distance must be > 0"},
		{"body distance", "focus:\n  body_distance: -2\n", "focus.body_distance must be > 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTempConfig(t, tc.yaml)
			_, err := Load(path)
			requireErrEq(t, err, tc.want)
		})
	}
}

func TestLoad_RejectsUnknownField(t *testing.T) {
	path := writeTempConfig(t, "camera:\n  zoom: 3\n")
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
	if !strings.Contains(err.Error(), "field zoom not found") {
		t.Fatalf("error=%q", err.Error())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}
