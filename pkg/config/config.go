package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ==================== 配置结构 ====================

// DBConfig 数据库配置
type DBConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// DSN 拼接 PostgreSQL 连接串
func (c *DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.Host, c.User, c.Password, c.DBName, c.Port, c.SSLMode)
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Port int
	Env  string // development / production
}

// JWTConfig JWT 配置
type JWTConfig struct {
	SecretKey       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	Issuer          string
}

// SMSConfig 短信网关配置
type SMSConfig struct {
	GatewayURL string
	APIKey     string
	Sender     string
	Timeout    time.Duration
}

// StorageConfig 对象存储配置
type StorageConfig struct {
	Provider  string // "s3" | "local"
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string
	CDNDomain string
	BasePath  string
}

// LogConfig 日志配置
type LogConfig struct {
	Level string
}

// TaskConfig 定时任务配置
type TaskConfig struct {
	BalanceSettleEnabled bool
	BalanceSettleCron    string
	LogRetentionEnabled  bool
	LogRetentionCron     string
	LogRetentionDays     int
}

// Config 全局配置
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	JWT     JWTConfig
	SMS     SMSConfig
	Storage StorageConfig
	Log     LogConfig
	Task    TaskConfig
}

// ==================== 加载 ====================

// Load 加载配置
// 优先级：环境变量 > 配置文件 > 默认值
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	v.SetEnvPrefix("MARKET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// 配置文件可选，找不到时走环境变量+默认值
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetInt("server.port"),
			Env:  v.GetString("server.env"),
		},
		DB: DBConfig{
			Host:            v.GetString("db.host"),
			Port:            v.GetInt("db.port"),
			User:            v.GetString("db.user"),
			Password:        v.GetString("db.password"),
			DBName:          v.GetString("db.name"),
			SSLMode:         v.GetString("db.sslmode"),
			MaxIdleConns:    v.GetInt("db.max_idle_conns"),
			MaxOpenConns:    v.GetInt("db.max_open_conns"),
			ConnMaxLifetime: v.GetDuration("db.conn_max_lifetime"),
		},
		JWT: JWTConfig{
			SecretKey:       v.GetString("jwt.secret_key"),
			AccessTokenTTL:  v.GetDuration("jwt.access_token_ttl"),
			RefreshTokenTTL: v.GetDuration("jwt.refresh_token_ttl"),
			Issuer:          v.GetString("jwt.issuer"),
		},
		SMS: SMSConfig{
			GatewayURL: v.GetString("sms.gateway_url"),
			APIKey:     v.GetString("sms.api_key"),
			Sender:     v.GetString("sms.sender"),
			Timeout:    v.GetDuration("sms.timeout"),
		},
		Storage: StorageConfig{
			Provider:  v.GetString("storage.provider"),
			Bucket:    v.GetString("storage.bucket"),
			Region:    v.GetString("storage.region"),
			AccessKey: v.GetString("storage.access_key"),
			SecretKey: v.GetString("storage.secret_key"),
			Endpoint:  v.GetString("storage.endpoint"),
			CDNDomain: v.GetString("storage.cdn_domain"),
			BasePath:  v.GetString("storage.base_path"),
		},
		Log: LogConfig{
			Level: v.GetString("log.level"),
		},
		Task: TaskConfig{
			BalanceSettleEnabled: v.GetBool("task.balance_settle_enabled"),
			BalanceSettleCron:    v.GetString("task.balance_settle_cron"),
			LogRetentionEnabled:  v.GetBool("task.log_retention_enabled"),
			LogRetentionCron:     v.GetString("task.log_retention_cron"),
			LogRetentionDays:     v.GetInt("task.log_retention_days"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.env", "development")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "market_admin")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "marketplace")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.max_open_conns", 100)
	v.SetDefault("db.conn_max_lifetime", time.Hour)

	v.SetDefault("jwt.secret_key", "marketplace-secret-key-change-in-production")
	v.SetDefault("jwt.access_token_ttl", 2*time.Hour)
	v.SetDefault("jwt.refresh_token_ttl", 7*24*time.Hour)
	v.SetDefault("jwt.issuer", "marketplace")

	v.SetDefault("sms.gateway_url", "")
	v.SetDefault("sms.timeout", 10*time.Second)
	v.SetDefault("sms.sender", "MARKET")

	v.SetDefault("storage.provider", "local")
	v.SetDefault("storage.base_path", "./uploads")

	v.SetDefault("log.level", "info")

	v.SetDefault("task.balance_settle_enabled", true)
	v.SetDefault("task.balance_settle_cron", "0 */10 * * * *")
	v.SetDefault("task.log_retention_enabled", true)
	v.SetDefault("task.log_retention_cron", "0 0 4 * * *")
	v.SetDefault("task.log_retention_days", 90)
}

