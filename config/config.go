// server/config/config.go
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// --- Sub-structs, mirroring the YAML layout ---

type ServerConfig struct {
	Port               string `mapstructure:"port"`
	Mode               string `mapstructure:"mode"`
	MaxMultipartMemory int64  `mapstructure:"maxMultipartMemory"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type AuthConfig struct {
	JWTSecret     string `mapstructure:"jwtSecret"`
	AdminEmail    string `mapstructure:"adminEmail"`
	AdminPassword string `mapstructure:"adminPassword"`
	AdminName     string `mapstructure:"adminName"`
}

type MongoConfig struct {
	URI    string `mapstructure:"uri"`
	DBName string `mapstructure:"dbName"`
}

type StoreConfig struct {
	Driver string      `mapstructure:"driver"`
	Seed   bool        `mapstructure:"seed"`
	Mongo  MongoConfig `mapstructure:"mongo"`
}

type S3Config struct {
	Bucket           string `mapstructure:"bucket"`
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"accessKeyID"`
	SecretAccessKey  string `mapstructure:"secretAccessKey"`
	CloudFrontDomain string `mapstructure:"cloudFrontDomain"`
	Endpoint         string `mapstructure:"endpoint"`
}

type UploadsConfig struct {
	Driver  string   `mapstructure:"driver"`
	Dir     string   `mapstructure:"dir"`
	BaseURL string   `mapstructure:"baseURL"`
	S3      S3Config `mapstructure:"s3"`
}

type AlertsConfig struct {
	Schedule string `mapstructure:"schedule"`
}

type RateLimitConfig struct {
	LoginPerSecond float64 `mapstructure:"loginPerSecond"`
	LoginBurst     int     `mapstructure:"loginBurst"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

type AppConfig struct {
	Timezone     string  `mapstructure:"timezone"`
	AnnualBudget float64 `mapstructure:"annualBudget"`
}

// --- Root Config ---

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Store     StoreConfig     `mapstructure:"store"`
	Uploads   UploadsConfig   `mapstructure:"uploads"`
	Alerts    AlertsConfig    `mapstructure:"alerts"`
	RateLimit RateLimitConfig `mapstructure:"rateLimit"`
	CORS      CORSConfig      `mapstructure:"cors"`
	App       AppConfig       `mapstructure:"app"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "5000")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.maxMultipartMemory", 32<<20)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("auth.jwtSecret", "change-me")
	v.SetDefault("auth.adminEmail", "admin@example.com")
	v.SetDefault("auth.adminPassword", "admin123")
	v.SetDefault("auth.adminName", "Fleet Administrator")
	v.SetDefault("store.driver", "memory")
	v.SetDefault("store.seed", true)
	v.SetDefault("store.mongo.dbName", "fleet")
	v.SetDefault("uploads.driver", "local")
	v.SetDefault("uploads.dir", "uploads")
	v.SetDefault("uploads.baseURL", "/uploads")
	v.SetDefault("alerts.schedule", "0 7 * * *")
	v.SetDefault("rateLimit.loginPerSecond", 1.0)
	v.SetDefault("rateLimit.loginBurst", 5)
	v.SetDefault("cors.allowedOrigins", []string{"*"})
	v.SetDefault("app.timezone", "Local")
	v.SetDefault("app.annualBudget", 15000000)
}

// LoadConfig reads config.yaml from path and overrides it with environment variables.
// A missing file is fine; defaults and env still apply.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("server.port", "SERVER_PORT")
	v.BindEnv("server.mode", "GIN_MODE")
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
	v.BindEnv("auth.jwtSecret", "JWT_SECRET")
	v.BindEnv("auth.adminEmail", "ADMIN_EMAIL")
	v.BindEnv("auth.adminPassword", "ADMIN_PASSWORD")
	v.BindEnv("store.driver", "STORE_DRIVER")
	v.BindEnv("store.mongo.uri", "MONGO_URI")
	v.BindEnv("store.mongo.dbName", "MONGO_DBNAME")
	v.BindEnv("uploads.driver", "UPLOADS_DRIVER")
	v.BindEnv("uploads.dir", "UPLOADS_DIR")
	v.BindEnv("uploads.s3.bucket", "S3_BUCKET")
	v.BindEnv("uploads.s3.region", "S3_REGION")
	v.BindEnv("uploads.s3.accessKeyID", "S3_ACCESS_KEY_ID")
	v.BindEnv("uploads.s3.secretAccessKey", "S3_SECRET_ACCESS_KEY")
	v.BindEnv("uploads.s3.cloudFrontDomain", "S3_CLOUDFRONT_DOMAIN")
	v.BindEnv("uploads.s3.endpoint", "S3_ENDPOINT")
	v.BindEnv("alerts.schedule", "ALERTS_SCHEDULE")
	v.BindEnv("app.timezone", "APP_TIMEZONE")

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	return
}
