package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("REPORT_CSV_DELIMITER", ";")
	t.Setenv("DOWNLOAD_TOKEN_TTL", "90s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.shop.test,https://b.shop.test")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "UTC", cfg.Report.Location.String())
	assert.Equal(t, 90*time.Second, cfg.DownloadToken.TTL)
	assert.Equal(t, []string{"https://a.shop.test", "https://b.shop.test"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "wc_download_sales_report_settings", cfg.Report.SettingsName)
	assert.True(t, cfg.DownloadTokenSweep.Enabled)

	delimiter, err := cfg.Report.Delimiter()
	require.NoError(t, err)
	assert.Equal(t, ';', delimiter)
}

func TestConfig_resolve(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Database: Database{
				Driver:   "postgres",
				User:     "report",
				Password: "pw",
				URL:      "db:5432/shop?sslmode=disable",
			},
			Report:        Report{StoreTimezone: "UTC", CSVDelimiter: ","},
			DownloadToken: DownloadToken{TTL: time.Minute},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "valid config builds the dsn",
			mutate: func(*Config) {},
		},
		{
			name:    "unknown timezone",
			mutate:  func(c *Config) { c.Report.StoreTimezone = "Mars/Olympus" },
			wantErr: "STORE_TIMEZONE",
		},
		{
			name:    "multi character delimiter",
			mutate:  func(c *Config) { c.Report.CSVDelimiter = ";;" },
			wantErr: "REPORT_CSV_DELIMITER",
		},
		{
			name:    "empty delimiter",
			mutate:  func(c *Config) { c.Report.CSVDelimiter = "" },
			wantErr: "REPORT_CSV_DELIMITER",
		},
		{
			name:    "zero token ttl",
			mutate:  func(c *Config) { c.DownloadToken.TTL = 0 },
			wantErr: "DOWNLOAD_TOKEN_TTL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.resolve()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "postgres://report:pw@db:5432/shop?sslmode=disable", cfg.Database.DSN)
			assert.Equal(t, time.UTC, cfg.Report.Location)
		})
	}
}
