package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "report", c.Format)
	assert.Equal(t, 4, c.Workers)
	assert.Equal(t, 8, c.ChartHeight)
	assert.Equal(t, uint64(0), c.Seed)
	assert.True(t, c.PrettyJSON)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CRYPTOSENT_SEED", "1234")
	t.Setenv("CRYPTOSENT_FORMAT", "JSON")
	t.Setenv("CRYPTOSENT_CHART_HEIGHT", "12")

	c, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), c.Seed)
	assert.Equal(t, "json", c.Format)
	assert.Equal(t, 12, c.ChartHeight)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cryptosent.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: table\nworkers: 2\nend-date: \"2024-11-30\"\ncolumns: [sym, trend]\n"), 0o644))

	v := viper.New()
	v.Set("config", path)
	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "table", c.Format)
	assert.Equal(t, 2, c.Workers)
	assert.Equal(t, []string{"sym", "trend"}, c.Columns)

	end, err := c.End(time.Now())
	require.NoError(t, err)
	assert.Equal(t, "2024-11-30", end.Format("2006-01-02"))
}

func TestLoadMissingConfigFile(t *testing.T) {
	v := viper.New()
	v.Set("config", filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := Load(v)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	v := viper.New()
	v.Set("format", "pdf")
	v.Set("workers", 0)
	_, err := Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Format")
	assert.Contains(t, err.Error(), "Workers")

	v = viper.New()
	v.Set("end-date", "30/11/2024")
	_, err = Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EndDate")

	v = viper.New()
	v.Set("trend", "sideways")
	_, err = Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Trend")
}

func TestLoadTrendNormalized(t *testing.T) {
	v := viper.New()
	v.Set("trend", " Uptrend ")
	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "uptrend", c.Trend)
}

func TestEndDefaultsToNow(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	end, err := Config{}.End(now)
	require.NoError(t, err)
	assert.Equal(t, now, end)
}
