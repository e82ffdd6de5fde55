package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Basin form relay endpoint. Submitted bookings are pushed there so a
	// record exists independently of this service.
	BasinEndpoint string `mapstructure:"BASIN_ENDPOINT"`

	// PayFast gateway configuration. The three callback URLs point back at
	// this deployment and differ per environment.
	PayfastMerchantID  string `mapstructure:"PAYFAST_MERCHANT_ID"`
	PayfastMerchantKey string `mapstructure:"PAYFAST_MERCHANT_KEY"`
	PayfastProcessURL  string `mapstructure:"PAYFAST_PROCESS_URL"`
	PayfastReturnURL   string `mapstructure:"PAYFAST_RETURN_URL"`
	PayfastCancelURL   string `mapstructure:"PAYFAST_CANCEL_URL"`
	PayfastNotifyURL   string `mapstructure:"PAYFAST_NOTIFY_URL"`

	// Cloudinary credentials for tour image uploads.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	// Where review submissions are forwarded to.
	ReviewRedirectURL string `mapstructure:"REVIEW_REDIRECT_URL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("PAYFAST_PROCESS_URL", "https://www.payfast.co.za/eng/process")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// Validate checks the configuration the booking pipeline depends on. A
// deployment missing any of these cannot take bookings, so callers should
// treat an error here as fatal at startup.
func Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"BASIN_ENDPOINT", AppConfig.BasinEndpoint},
		{"PAYFAST_MERCHANT_ID", AppConfig.PayfastMerchantID},
		{"PAYFAST_MERCHANT_KEY", AppConfig.PayfastMerchantKey},
		{"PAYFAST_RETURN_URL", AppConfig.PayfastReturnURL},
		{"PAYFAST_CANCEL_URL", AppConfig.PayfastCancelURL},
		{"PAYFAST_NOTIFY_URL", AppConfig.PayfastNotifyURL},
	}
	for _, entry := range required {
		if entry.value == "" {
			return fmt.Errorf("missing required configuration: %s", entry.name)
		}
	}
	return nil
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
