package configloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/AndrewKraevskii/screen-drawer/pkg/config"
	"github.com/AndrewKraevskii/screen-drawer/pkg/fsutil"
)

// newProjectDir creates a temp directory with a .git marker so the upward
// config search never escapes it.
func newProjectDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}
	return dir
}

// writeConfigFile writes a YAML config, creating parent directories.
func writeConfigFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	dir := newProjectDir(t)

	opts := LoadOptions{
		WorkingDir:       dir,
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
	}

	result, err := opts.load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}
	if *result.Config != *config.Default() {
		t.Errorf("Load() = %+v, want defaults", result.Config)
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("LoadedFrom = %v, want empty", result.LoadedFrom)
	}
}

func (o LoadOptions) load(ctx context.Context) (*LoadResult, error) {
	return Load(ctx, o)
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	dir := newProjectDir(t)
	configPath := filepath.Join(dir, ".screen-drawer.yml")
	writeConfigFile(t, configPath, `
canvas:
  max_stroke_points: 512
session:
  path: notes.sdr
`)

	opts := LoadOptions{
		WorkingDir:       dir,
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
	}

	result, err := opts.load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Canvas.MaxStrokePoints != 512 {
		t.Errorf("MaxStrokePoints = %d, want 512", result.Config.Canvas.MaxStrokePoints)
	}
	if result.Config.Session.Path != "notes.sdr" {
		t.Errorf("Session.Path = %q, want notes.sdr", result.Config.Session.Path)
	}

	// Settings absent from the file keep their defaults.
	if result.Config.Canvas.EraserThickness != config.Default().Canvas.EraserThickness {
		t.Errorf("EraserThickness = %g, want default", result.Config.Canvas.EraserThickness)
	}

	if result.Paths.Project != configPath {
		t.Errorf("Paths.Project = %q, want %q", result.Paths.Project, configPath)
	}
	if len(result.LoadedFrom) != 1 || result.LoadedFrom[0] != configPath {
		t.Errorf("LoadedFrom = %v, want [%s]", result.LoadedFrom, configPath)
	}
}

func TestLoad_UpwardSearch(t *testing.T) {
	t.Parallel()

	root := newProjectDir(t)
	configPath := filepath.Join(root, ".screen-drawer.yml")
	writeConfigFile(t, configPath, "canvas:\n  max_stroke_points: 512\n")

	nested := filepath.Join(root, "sub", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	opts := LoadOptions{
		WorkingDir:       nested,
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
	}

	result, err := opts.load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Paths.Project != configPath {
		t.Errorf("Paths.Project = %q, want %q found above working dir", result.Paths.Project, configPath)
	}
	if result.Config.Canvas.MaxStrokePoints != 512 {
		t.Errorf("MaxStrokePoints = %d, want 512", result.Config.Canvas.MaxStrokePoints)
	}
}

func TestLoad_SearchStopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	outer := t.TempDir()
	writeConfigFile(t, filepath.Join(outer, ".screen-drawer.yml"),
		"canvas:\n  max_stroke_points: 512\n")

	repo := filepath.Join(outer, "repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	work := filepath.Join(repo, "sub")
	if err := os.MkdirAll(work, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	opts := LoadOptions{
		WorkingDir:       work,
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
	}

	result, err := opts.load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// The config above the VCS root must not leak into the repo.
	if result.Paths.Project != "" {
		t.Errorf("Paths.Project = %q, want empty", result.Paths.Project)
	}
	if result.Config.Canvas.MaxStrokePoints != config.Default().Canvas.MaxStrokePoints {
		t.Errorf("MaxStrokePoints = %d, want default", result.Config.Canvas.MaxStrokePoints)
	}
}

func TestLoad_ExplicitConfig(t *testing.T) {
	t.Parallel()

	dir := newProjectDir(t)
	explicitPath := filepath.Join(t.TempDir(), "custom.yml")
	writeConfigFile(t, explicitPath, "canvas:\n  eraser_thickness: 24\n")

	opts := LoadOptions{
		WorkingDir:       dir,
		ExplicitPath:     explicitPath,
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
	}

	result, err := opts.load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Canvas.EraserThickness != 24 {
		t.Errorf("EraserThickness = %g, want 24", result.Config.Canvas.EraserThickness)
	}
	if result.Paths.Explicit != explicitPath {
		t.Errorf("Paths.Explicit = %q, want %q", result.Paths.Explicit, explicitPath)
	}
}

func TestLoad_ExplicitOverridesProject(t *testing.T) {
	t.Parallel()

	dir := newProjectDir(t)
	projectPath := filepath.Join(dir, ".screen-drawer.yml")
	writeConfigFile(t, projectPath, "canvas:\n  max_stroke_points: 100\n")

	explicitPath := filepath.Join(t.TempDir(), "custom.yml")
	writeConfigFile(t, explicitPath, "canvas:\n  max_stroke_points: 200\n")

	opts := LoadOptions{
		WorkingDir:       dir,
		ExplicitPath:     explicitPath,
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
	}

	result, err := opts.load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Canvas.MaxStrokePoints != 200 {
		t.Errorf("MaxStrokePoints = %d, want explicit value 200", result.Config.Canvas.MaxStrokePoints)
	}

	want := []string{projectPath, explicitPath}
	if len(result.LoadedFrom) != len(want) {
		t.Fatalf("LoadedFrom = %v, want %v", result.LoadedFrom, want)
	}
	for i := range want {
		if result.LoadedFrom[i] != want[i] {
			t.Errorf("LoadedFrom[%d] = %q, want %q", i, result.LoadedFrom[i], want[i])
		}
	}
}

func TestLoad_MissingExplicitConfig(t *testing.T) {
	t.Parallel()

	dir := newProjectDir(t)

	opts := LoadOptions{
		WorkingDir:       dir,
		ExplicitPath:     filepath.Join(dir, "nope.yml"),
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
	}

	_, err := opts.load(context.Background())
	if err == nil {
		t.Fatal("Load() error = nil, want missing file error")
	}
	if !errors.Is(err, fsutil.ErrNotFound) {
		t.Errorf("Load() error = %v, want fsutil.ErrNotFound", err)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	dir := newProjectDir(t)
	writeConfigFile(t, filepath.Join(dir, ".screen-drawer.yml"),
		"canvas:\n  eraser_thickness: -3\n")

	opts := LoadOptions{
		WorkingDir:       dir,
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
	}

	_, err := opts.load(context.Background())
	if err == nil {
		t.Fatal("Load() error = nil, want validation error")
	}
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("Load() error = %v, want config.ErrInvalidConfig", err)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	dir := newProjectDir(t)
	writeConfigFile(t, filepath.Join(dir, ".screen-drawer.yml"), "canvas: [unclosed\n")

	opts := LoadOptions{
		WorkingDir:       dir,
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
	}

	_, err := opts.load(context.Background())
	if err == nil {
		t.Fatal("Load() error = nil, want parse error")
	}
}

func TestLoad_UserConfig(t *testing.T) {
	xdg := t.TempDir()
	userPath := filepath.Join(xdg, "screen-drawer", "config.yaml")
	writeConfigFile(t, userPath, "canvas:\n  max_stroke_points: 128\n")
	t.Setenv("XDG_CONFIG_HOME", xdg)

	opts := LoadOptions{
		WorkingDir: newProjectDir(t),
		IgnoreEnv:  true,
	}

	result, err := opts.load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Paths.User != userPath {
		t.Errorf("Paths.User = %q, want %q", result.Paths.User, userPath)
	}
	if result.Config.Canvas.MaxStrokePoints != 128 {
		t.Errorf("MaxStrokePoints = %d, want 128", result.Config.Canvas.MaxStrokePoints)
	}
}

func TestLoad_ProjectOverridesUser(t *testing.T) {
	xdg := t.TempDir()
	userPath := filepath.Join(xdg, "screen-drawer", "config.yaml")
	writeConfigFile(t, userPath, "canvas:\n  max_stroke_points: 128\n")
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir := newProjectDir(t)
	projectPath := filepath.Join(dir, ".screen-drawer.yml")
	writeConfigFile(t, projectPath, "canvas:\n  max_stroke_points: 256\n")

	opts := LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	}

	result, err := opts.load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Canvas.MaxStrokePoints != 256 {
		t.Errorf("MaxStrokePoints = %d, want project value 256", result.Config.Canvas.MaxStrokePoints)
	}

	want := []string{userPath, projectPath}
	if len(result.LoadedFrom) != len(want) {
		t.Fatalf("LoadedFrom = %v, want %v", result.LoadedFrom, want)
	}
	for i := range want {
		if result.LoadedFrom[i] != want[i] {
			t.Errorf("LoadedFrom[%d] = %q, want %q", i, result.LoadedFrom[i], want[i])
		}
	}
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := LoadOptions{
		WorkingDir:       t.TempDir(),
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
	}

	_, err := opts.load(ctx)
	if err == nil {
		t.Fatal("Load() error = nil, want cancellation error")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}
