package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/datagrid/internal/config"
	"github.com/rshade/datagrid/internal/logging"
	"github.com/rshade/datagrid/internal/pagination"
)

// writeConfig is a test helper that writes YAML content to a temp file
// and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestNew_Defaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, pagination.DefaultPageSize, cfg.Grid.PageSize)
	assert.Equal(t, pagination.DefaultMaxButtons, cfg.Grid.MaxButtons)
	assert.False(t, cfg.Grid.PreservePage)
	assert.Equal(t, pagination.ResetOnGrowth, cfg.Grid.Policy())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, logging.FormatConsole, cfg.Logging.Format)
	require.NoError(t, cfg.Validate())
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.New(), cfg)
}

func TestLoad_PartialSectionKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
grid:
  page_size: 25
logging:
  format: json
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Grid.PageSize)
	assert.Equal(t, pagination.DefaultMaxButtons, cfg.Grid.MaxButtons)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_PreservePage(t *testing.T) {
	path := writeConfig(t, "grid:\n  preserve_page: true\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, pagination.PreservePage, cfg.Grid.Policy())
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeConfig(t, "# nothing here\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.New(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		errMsg  string
	}{
		{
			name:    "unknown key",
			content: "pager:\n  size: 3\n",
			wantErr: config.ErrUnknownConfigKey,
		},
		{
			name:    "page size out of range",
			content: "grid:\n  page_size: 0\n",
			wantErr: pagination.ErrInvalidPageSize,
		},
		{
			name:    "too few buttons",
			content: "grid:\n  max_buttons: 2\n",
			wantErr: pagination.ErrInvalidMaxButtons,
		},
		{
			name:    "bad level",
			content: "logging:\n  level: loud\n",
			wantErr: config.ErrInvalidConfig,
			errMsg:  "logging.level",
		},
		{
			name:    "bad format",
			content: "logging:\n  format: xml\n",
			wantErr: config.ErrInvalidConfig,
			errMsg:  "logging.format",
		},
		{
			name:    "malformed yaml",
			content: "grid: [\n",
			errMsg:  "parsing config YAML",
		},
		{
			name:    "wrong type",
			content: "grid:\n  page_size: lots\n",
			errMsg:  `applying config section "grid"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.content))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "grid:\n  page_size: 25\n  max_buttons: 7\n")
	t.Setenv("DATAGRID_PAGE_SIZE", "40")
	t.Setenv("DATAGRID_PRESERVE_PAGE", "true")
	t.Setenv("DATAGRID_LOG_LEVEL", "debug")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Grid.PageSize)
	assert.Equal(t, 7, cfg.Grid.MaxButtons)
	assert.True(t, cfg.Grid.PreservePage)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestApplyEnv_ParseError(t *testing.T) {
	t.Setenv("DATAGRID_MAX_BUTTONS", "many")

	err := config.New().ApplyEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestMergeYAML_NilTarget(t *testing.T) {
	err := config.MergeYAML(nil, "unused.yaml")
	require.Error(t, err)
}

func TestToLoggingConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "warn", Format: "json"}
	got := lc.ToLoggingConfig(os.Stdout)
	assert.Equal(t, "warn", got.Level)
	assert.Equal(t, "json", got.Format)
	assert.Equal(t, os.Stdout, got.Output)
}
