package config

import (
	"bytes"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type AppCfg struct {
	Name      string
	Env       string
	Host      string
	Port      int
	DocsPath  string
	PublicDir string
}

type RootCfg struct {
	// ApiBearerToken protects /api/v1 when set. Empty disables authentication.
	ApiBearerToken string
}

type LogFileCfg struct {
	Enabled    bool
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type LogCfg struct {
	Level string
	File  LogFileCfg
}

type DBCfg struct {
	DSN         string
	MaxOpen     int
	MaxIdle     int
	AutoMigrate bool
}

type RedisCfg struct {
	Addr          string
	Password      string
	DB            int
	PoolSize      int
	RateLimit     int
	RateWindowSec int
}

type MQCfg struct {
	URL      string
	Exchange string
}

type S3Cfg struct {
	Endpoint         string
	Region           string
	AccessKey        string
	SecretKey        string
	Bucket           string
	UsePathStyle     bool
	PresignExpireSec int
	SSE              string
}

type TelemetryCfg struct {
	Enabled      bool
	OtlpEndpoint string
	SampleRatio  float64
}

type Config struct {
	App       AppCfg
	Root      RootCfg
	Log       LogCfg
	Database  DBCfg
	Redis     RedisCfg
	RabbitMQ  MQCfg
	S3        S3Cfg
	Telemetry TelemetryCfg
}

func Load() (*Config, error) {
	base := viper.New()
	base.SetConfigName("config")
	base.SetConfigType("yaml")
	base.AddConfigPath("./configs")
	base.AddConfigPath(".")
	setEnv(base)

	// defaults apply with or without a config file
	setDefaults(base)

	if err := base.ReadInConfig(); err == nil {
		// expand ${ENV} in the file once, then parse the result
		raw, err := os.ReadFile(base.ConfigFileUsed())
		if err != nil {
			return nil, err
		}
		expanded := os.ExpandEnv(string(raw))

		v := viper.New()
		v.SetConfigType("yaml")
		if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
			return nil, err
		}
		setEnv(v)
		setDefaults(v)
		return unmarshal(v)
	}

	// no file: env and defaults only
	return unmarshal(base)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setEnv(v *viper.Viper) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP") // e.g. APP_DATABASE_DSN -> database.dsn
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "practicas-api")
	v.SetDefault("app.env", "debug")
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", 3000)
	v.SetDefault("app.docsPath", "docs")
	v.SetDefault("app.publicDir", "public")
	v.SetDefault("root.apiBearerToken", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file.enabled", false)
	v.SetDefault("log.file.path", "logs/app.log")
	v.SetDefault("log.file.maxSizeMB", 50)
	v.SetDefault("log.file.maxBackups", 5)
	v.SetDefault("log.file.maxAgeDays", 30)
	v.SetDefault("log.file.compress", true)
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.maxOpen", 20)
	v.SetDefault("database.maxIdle", 5)
	v.SetDefault("database.autoMigrate", true)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.poolSize", 10)
	v.SetDefault("redis.rateLimit", 100)
	v.SetDefault("redis.rateWindowSec", 60)
	v.SetDefault("rabbitmq.url", "")
	v.SetDefault("rabbitmq.exchange", "practicas.events")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "auto")
	v.SetDefault("s3.accessKey", "")
	v.SetDefault("s3.secretKey", "")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.usePathStyle", true)
	v.SetDefault("s3.presignExpireSec", 900)
	v.SetDefault("s3.sse", "")
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.otlpEndpoint", "")
	v.SetDefault("telemetry.sampleRatio", 1.0)
}
