package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSettingsDB(t *testing.T, rows map[string]string) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.Exec("CREATE TABLE site_settings (`key` TEXT PRIMARY KEY, value TEXT)").Error)
	for k, v := range rows {
		require.NoError(t, gdb.Exec("INSERT INTO site_settings (`key`, value) VALUES (?, ?)", k, v).Error)
	}
	return gdb
}

func TestApplySiteSettingsOverridesDefaults(t *testing.T) {
	cfg := New()
	gdb := setupSettingsDB(t, map[string]string{
		"ads_frequency":  "5",
		"view_delay_ms":  "500",
		"feed_page_size": "20",
	})

	require.NoError(t, ApplySiteSettings(cfg, gdb))

	assert.Equal(t, 5, cfg.Ads.Frequency)
	assert.Equal(t, 500*time.Millisecond, cfg.View.Delay)
	assert.Equal(t, 20, cfg.Feed.PageSize)
}

func TestApplySiteSettingsKeepsDefaultsWhenMissing(t *testing.T) {
	cfg := New()
	frequency := cfg.Ads.Frequency
	delay := cfg.View.Delay
	pageSize := cfg.Feed.PageSize

	gdb := setupSettingsDB(t, nil)
	require.NoError(t, ApplySiteSettings(cfg, gdb))

	assert.Equal(t, frequency, cfg.Ads.Frequency)
	assert.Equal(t, delay, cfg.View.Delay)
	assert.Equal(t, pageSize, cfg.Feed.PageSize)
}

func TestApplySiteSettingsIgnoresMalformedValues(t *testing.T) {
	cfg := New()
	pageSize := cfg.Feed.PageSize

	gdb := setupSettingsDB(t, map[string]string{
		"ads_frequency":  "every third",
		"feed_page_size": "-1",
	})
	require.NoError(t, ApplySiteSettings(cfg, gdb))

	// unparseable and out-of-range values never clobber defaults
	assert.Equal(t, 3, cfg.Ads.Frequency)
	assert.Equal(t, pageSize, cfg.Feed.PageSize)
}

func TestApplySiteSettingsZeroFrequencyDisablesAds(t *testing.T) {
	cfg := New()
	gdb := setupSettingsDB(t, map[string]string{"ads_frequency": "0"})
	require.NoError(t, ApplySiteSettings(cfg, gdb))
	assert.Equal(t, 0, cfg.Ads.Frequency)
}
