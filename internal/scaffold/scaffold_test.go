package scaffold

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/universal-dev-env/udev/internal/config"
)

func TestSetup_ComposeLayout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shop")
	s := New(WithOutputDir(dir))

	cfg := config.Config{
		ProjectName: "shop",
		ProjectType: config.ProjectReact,
		Backend:     config.BackendExpress,
		AIContext:   true,
	}
	result, err := s.Setup(context.Background(), cfg)
	require.NoError(t, err)

	for _, want := range []string{
		"client/Dockerfile",
		"server/Dockerfile",
		"docker-compose.yml",
		".env.development",
		".env.staging",
		".env.production",
		"README.md",
		".gitignore",
		"SESSION_HANDOFF.md",
		".ai/context.md",
		".ai-agent-config.json",
		"AI_AGENT_ONBOARDING.md",
	} {
		assert.FileExists(t, filepath.Join(dir, want))
	}
	assert.NoFileExists(t, filepath.Join(dir, "Dockerfile"), "compose projects have per-service Dockerfiles")
	assert.Contains(t, result.Written, "docker-compose.yml")
}

func TestSetup_DevcontainerLayout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plain")
	s := New(WithOutputDir(dir))

	cfg := config.Config{ProjectName: "plain", ProjectType: config.ProjectNode}
	_, err := s.Setup(context.Background(), cfg)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, ".devcontainer", "devcontainer.json"))
	assert.NoFileExists(t, filepath.Join(dir, "Dockerfile"))
	assert.NoFileExists(t, filepath.Join(dir, "docker-compose.yml"))
	assert.FileExists(t, filepath.Join(dir, ".env.development"))
	assert.NoFileExists(t, filepath.Join(dir, ".env.production"), "static deploys get a single environment")
}

func TestSetup_DockerLayout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "api")
	s := New(WithOutputDir(dir))

	cfg := config.Config{ProjectName: "api", ProjectType: config.ProjectPython}
	_, err := s.Setup(context.Background(), cfg)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "Dockerfile"))
	assert.FileExists(t, filepath.Join(dir, ".devcontainer", "devcontainer.json"))

	data, err := os.ReadFile(filepath.Join(dir, "Dockerfile"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "FROM python:3.11-slim")
}

func TestSetup_NeverClobbersSessionHandoff(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shop")
	s := New(WithOutputDir(dir))
	cfg := config.Config{ProjectName: "shop", ProjectType: config.ProjectNode}

	_, err := s.Setup(context.Background(), cfg)
	require.NoError(t, err)

	handoff := filepath.Join(dir, HandoffFile)
	require.NoError(t, os.WriteFile(handoff, []byte("precious session notes"), 0o644))

	result, err := s.Setup(context.Background(), cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(handoff)
	require.NoError(t, err)
	assert.Equal(t, "precious session notes", string(data))
	assert.Contains(t, result.Skipped, HandoffFile)
}

func TestSetup_DryRunWritesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shop")
	s := New(WithOutputDir(dir), WithDryRun())

	cfg := config.Config{ProjectName: "shop", ProjectType: config.ProjectFullStack}
	result, err := s.Setup(context.Background(), cfg)
	require.NoError(t, err)

	assert.NoDirExists(t, dir)
	assert.NotEmpty(t, result.Written)
	assert.Contains(t, result.Written, "docker-compose.yml")
}

func TestSetup_EmptyNameRejected(t *testing.T) {
	s := New(WithOutputDir(t.TempDir()))
	_, err := s.Setup(context.Background(), config.Config{})
	assert.Error(t, err)
}

func TestSetup_InstallsHookInGitRepo(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shop")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))

	s := New(WithOutputDir(dir), WithGitHook())
	cfg := config.Config{ProjectName: "shop", ProjectType: config.ProjectNode}

	result, err := s.Setup(context.Background(), cfg)
	require.NoError(t, err)
	assert.True(t, result.HookInstalled)
	assert.FileExists(t, filepath.Join(dir, ".git", "hooks", "post-commit"))
}

func TestApplyTemplate(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "README.md"), []byte("# {{ .Name }}\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(src, "{{ .Name }}"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "{{ .Name }}", "main.txt"), []byte("hello {{ .Name }}"), 0o644))
	// PNG header: must be copied untouched even though it contains braces later
	binary := append([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, []byte("{{ .Name }}")...)
	require.NoError(t, os.WriteFile(filepath.Join(src, "logo.png"), binary, 0o644))

	out := filepath.Join(t.TempDir(), "out")
	require.NoError(t, ApplyTemplate(src, map[string]any{"Name": "demo"}, out))

	readme, err := os.ReadFile(filepath.Join(out, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# demo\n", string(readme))

	rendered, err := os.ReadFile(filepath.Join(out, "demo", "main.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello demo", string(rendered))

	logo, err := os.ReadFile(filepath.Join(out, "logo.png"))
	require.NoError(t, err)
	assert.Equal(t, binary, logo)
}

func TestApplyTemplate_SkipsGitDir(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, ".git", "HEAD"), []byte("ref: main"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "keep.txt"), []byte("kept"), 0o644))

	out := filepath.Join(t.TempDir(), "out")
	require.NoError(t, ApplyTemplate(src, nil, out))

	assert.FileExists(t, filepath.Join(out, "keep.txt"))
	assert.NoDirExists(t, filepath.Join(out, ".git"))
}
