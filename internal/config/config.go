package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Report             Report             `mapstructure:",squash"`
	DownloadToken      DownloadToken      `mapstructure:",squash"`
	DownloadTokenSweep DownloadTokenSweep `mapstructure:",squash"`
	Bootstrap          Bootstrap          `mapstructure:",squash"`
	SecretKey          string             `mapstructure:"secret_key"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Report holds the options of the product sales report
type Report struct {
	StoreTimezone string         `mapstructure:"store_timezone"`
	SettingsName  string         `mapstructure:"report_settings_name"`
	CSVDelimiter  string         `mapstructure:"report_csv_delimiter"`
	Location      *time.Location `mapstructure:"-"`
}

type DownloadToken struct {
	TTL           time.Duration `mapstructure:"download_token_ttl"`
	PublicBaseURL string        `mapstructure:"public_base_url"`
}

type DownloadTokenSweep struct {
	CronSchedule string `mapstructure:"download_token_sweep_cron"`
	Enabled      bool   `mapstructure:"download_token_sweep_enabled"`
}

// Bootstrap is only read by cmd/migrate to create the first admin account
type Bootstrap struct {
	AdminEmail    string `mapstructure:"admin_email"`
	AdminPassword string `mapstructure:"admin_password"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/shop")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("STORE_TIMEZONE", "UTC")
	viper.SetDefault("REPORT_SETTINGS_NAME", "wc_download_sales_report_settings")
	viper.SetDefault("REPORT_CSV_DELIMITER", ",")

	viper.SetDefault("DOWNLOAD_TOKEN_TTL", "5m")
	viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:8000")

	viper.SetDefault("DOWNLOAD_TOKEN_SWEEP_CRON", "*/10 * * * *") // every 10 minutes
	viper.SetDefault("DOWNLOAD_TOKEN_SWEEP_ENABLED", true)

	viper.SetDefault("ADMIN_EMAIL", "")
	viper.SetDefault("ADMIN_PASSWORD", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// godotenv already loaded the file, viper reading it is optional
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env): ", err)
	} else {
		logrus.Info(".env file read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.resolve(); err != nil {
		return nil, err
	}

	return config, nil
}

// resolve fills the derived fields and validates the report options
func (c *Config) resolve() error {
	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	location, err := time.LoadLocation(c.Report.StoreTimezone)
	if err != nil {
		return fmt.Errorf("invalid STORE_TIMEZONE %q: %w", c.Report.StoreTimezone, err)
	}
	c.Report.Location = location

	if _, err := c.Report.Delimiter(); err != nil {
		return err
	}

	if c.DownloadToken.TTL <= 0 {
		return fmt.Errorf("DOWNLOAD_TOKEN_TTL must be positive, got %s", c.DownloadToken.TTL)
	}

	return nil
}

// Delimiter returns the CSV field separator, which must be a single character
func (r Report) Delimiter() (rune, error) {
	runes := []rune(r.CSVDelimiter)
	if len(runes) != 1 {
		return 0, fmt.Errorf("REPORT_CSV_DELIMITER must be a single character, got %q", r.CSVDelimiter)
	}
	return runes[0], nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not get working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Trying to load .env from: ", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info(".env loaded from: ", location)
			return
		}
	}

	logrus.Warn("Could not load .env from any known location")
}
