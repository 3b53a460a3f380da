package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupInstall(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "share", "segtree"), 0755))
	t.Setenv(EnvDir, root)
	t.Setenv(EnvLang, "")
	return filepath.Join(root, "share", "segtree")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "segtree.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	data := setupInstall(t)

	cfg, err := Load(Options{}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "es", cfg.Lang)
	assert.Equal(t, data, cfg.DataDir)
	assert.Empty(t, cfg.DictPath)
	assert.True(t, cfg.Stages.NERecognition)
	assert.False(t, cfg.Stages.CompoundAnalysis)
}

func TestLoad_Precedence(t *testing.T) {
	setupInstall(t)
	path := writeConfig(t, "lang: ca\ndict: /tmp/dicc.db\nstages:\n  compound: true\n  NER: false\n")

	cfg, err := Load(Options{ConfigPath: path}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "ca", cfg.Lang)
	assert.Equal(t, "/tmp/dicc.db", cfg.DictPath)
	assert.True(t, cfg.Stages.CompoundAnalysis)
	assert.False(t, cfg.Stages.NERecognition)

	t.Setenv(EnvLang, "pt")
	cfg, err = Load(Options{ConfigPath: path}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "pt", cfg.Lang)

	cfg, err = Load(Options{ConfigPath: path, Lang: "en", DictPath: "other.src"}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, "other.src", cfg.DictPath)
}

func TestLoad_Errors(t *testing.T) {
	setupInstall(t)

	t.Run("unknown stage", func(t *testing.T) {
		path := writeConfig(t, "stages:\n  tokenizer: false\n")
		_, err := Load(Options{ConfigPath: path}, zap.NewNop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tokenizer")
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := writeConfig(t, "lang: [es\n")
		_, err := Load(Options{ConfigPath: path}, zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(Options{ConfigPath: filepath.Join(t.TempDir(), "none.yaml")}, zap.NewNop())
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid language", func(t *testing.T) {
		_, err := Load(Options{Lang: "not a language"}, zap.NewNop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid language")
	})
}

func TestLoad_MissingDataDir(t *testing.T) {
	t.Setenv(EnvDir, t.TempDir())

	_, err := Load(Options{}, zap.NewNop())
	assert.ErrorIs(t, err, ErrDataDirNotFound)
}

func TestLoad_DefaultInstallWarning(t *testing.T) {
	t.Setenv(EnvDir, "")

	core, logs := observer.New(zapcore.WarnLevel)
	_, _ = Load(Options{}, zap.New(core))

	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, EnvDir)
}
