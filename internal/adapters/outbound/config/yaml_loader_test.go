package config_test

import (
	"os"
	"path/filepath"
	"testing"

	appconfig "github.com/logcheck/logcheck/internal/adapters/outbound/config"
	"github.com/logcheck/logcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".logcheck.yaml"), []byte(content), 0644))
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
course_id: "SE 3100"
drop_empty_fields: true
group_size:
  max: 10
`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "SE 3100", cfg.CourseID)
	assert.True(t, cfg.DropEmptyFields)
	assert.Equal(t, 10, cfg.GroupSize.Max)
}

func TestYAMLLoader_UnsetKeysKeepDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `max_note_length: 120`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.MaxNoteLength)
	assert.Equal(t, domain.DefaultCourseID, cfg.CourseID)
	assert.Equal(t, domain.DefaultOutputFile, cfg.OutputFile)
	assert.Equal(t, domain.DefaultLongSpanMinutes, cfg.LongSpanMinutes)
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .logcheck.yaml")
}

func TestYAMLLoader_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
group_size:
  min: 0
`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .logcheck.yaml")
	assert.Contains(t, err.Error(), "group_size.min")
}

func TestYAMLLoader_EmptyFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "")
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}
