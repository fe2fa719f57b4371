package config

import (
	"strconv"
	"time"

	"gorm.io/gorm"
)

// siteSetting mirrors the site_settings row shape without importing the
// models package (which itself depends on config).
type siteSetting struct {
	Key   string
	Value string
}

// ApplySiteSettings overlays admin-managed settings onto the config.
// It runs once at startup: each known key is parsed into its typed field,
// and a missing or malformed value leaves the env/default value in place.
//
// Settings read from site_settings:
//   - ads_frequency: ad slot every N feed items (0 disables interleaving)
//   - view_delay_ms: delay before a mount counts as a view
//   - feed_page_size: items per feed page
func ApplySiteSettings(cfg *Config, gdb *gorm.DB) error {
	var rows []siteSetting
	err := gdb.Table("site_settings").
		Where("`key` IN ?", []string{"ads_frequency", "view_delay_ms", "feed_page_size"}).
		Find(&rows).Error
	if err != nil {
		return err
	}

	for _, row := range rows {
		n, err := strconv.Atoi(row.Value)
		if err != nil {
			continue
		}
		switch row.Key {
		case "ads_frequency":
			if n >= 0 {
				cfg.Ads.Frequency = n
			}
		case "view_delay_ms":
			if n >= 0 {
				cfg.View.Delay = time.Duration(n) * time.Millisecond
			}
		case "feed_page_size":
			if n > 0 {
				cfg.Feed.PageSize = n
			}
		}
	}
	return nil
}
