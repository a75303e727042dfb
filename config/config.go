package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix 환경변수 접두사 (예: SENSORHUB_DATABASE_DRIVER)
const EnvPrefix = "SENSORHUB"

// Config 애플리케이션 전체 설정
type Config struct {
	Server    ServerConfig    `mapstructure:"server" yaml:"server"`
	Database  DatabaseConfig  `mapstructure:"database" yaml:"database"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging"`
	InfluxDB  InfluxDBConfig  `mapstructure:"influxdb" yaml:"influxdb"`
	MQTT      MQTTConfig      `mapstructure:"mqtt" yaml:"mqtt"`
	Scheduler SchedulerConfig `mapstructure:"scheduler" yaml:"scheduler"`
}

// ServerConfig HTTP 서버 설정
type ServerConfig struct {
	Host         string   `mapstructure:"host" yaml:"host"`
	Port         int      `mapstructure:"port" yaml:"port"`
	ReadTimeout  int      `mapstructure:"read_timeout" yaml:"read_timeout"`   // seconds
	WriteTimeout int      `mapstructure:"write_timeout" yaml:"write_timeout"` // seconds
	IdleTimeout  int      `mapstructure:"idle_timeout" yaml:"idle_timeout"`   // seconds
	MaxUploadMB  int      `mapstructure:"max_upload_mb" yaml:"max_upload_mb"`
	CORSOrigins  []string `mapstructure:"cors_origins" yaml:"cors_origins"`
}

// DatabaseConfig 데이터베이스 설정
type DatabaseConfig struct {
	Driver          string         `mapstructure:"driver" yaml:"driver"` // sqlite, mysql, postgres
	SQLite          SQLiteConfig   `mapstructure:"sqlite" yaml:"sqlite"`
	MySQL           MySQLConfig    `mapstructure:"mysql" yaml:"mysql"`
	Postgres        PostgresConfig `mapstructure:"postgres" yaml:"postgres"`
	MaxOpenConns    int            `mapstructure:"max_open_conns" yaml:"max_open_conns"`
	MaxIdleConns    int            `mapstructure:"max_idle_conns" yaml:"max_idle_conns"`
	ConnMaxLifetime int            `mapstructure:"conn_max_lifetime" yaml:"conn_max_lifetime"` // seconds
}

// SQLiteConfig SQLite 설정
type SQLiteConfig struct {
	Path        string `mapstructure:"path" yaml:"path"`
	BusyTimeout int    `mapstructure:"busy_timeout" yaml:"busy_timeout"` // milliseconds
}

// MySQLConfig MySQL 설정
type MySQLConfig struct {
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port"`
	User     string `mapstructure:"user" yaml:"user"`
	Password string `mapstructure:"password" yaml:"password"`
	DBName   string `mapstructure:"dbname" yaml:"dbname"`
}

// PostgresConfig PostgreSQL 설정
type PostgresConfig struct {
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port"`
	User     string `mapstructure:"user" yaml:"user"`
	Password string `mapstructure:"password" yaml:"password"`
	DBName   string `mapstructure:"dbname" yaml:"dbname"`
	SSLMode  string `mapstructure:"sslmode" yaml:"sslmode"`
}

// LoggingConfig 로거 설정
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level"` // debug, info, warn, error
	Dir        string `mapstructure:"dir" yaml:"dir"`     // 비어 있으면 콘솔만 사용
	Color      bool   `mapstructure:"color" yaml:"color"`
	ShowCaller bool   `mapstructure:"show_caller" yaml:"show_caller"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days"`
}

// InfluxDBConfig 시계열 미러 설정
type InfluxDBConfig struct {
	Enabled       bool   `mapstructure:"enabled" yaml:"enabled"`
	URL           string `mapstructure:"url" yaml:"url"`
	Token         string `mapstructure:"token" yaml:"token"`
	Org           string `mapstructure:"org" yaml:"org"`
	Bucket        string `mapstructure:"bucket" yaml:"bucket"`
	BatchSize     int    `mapstructure:"batch_size" yaml:"batch_size"`
	FlushInterval int    `mapstructure:"flush_interval" yaml:"flush_interval"` // seconds
}

// MQTTConfig MQTT 수집 브리지 설정
type MQTTConfig struct {
	Enabled     bool   `mapstructure:"enabled" yaml:"enabled"`
	Broker      string `mapstructure:"broker" yaml:"broker"`
	ClientID    string `mapstructure:"client_id" yaml:"client_id"`
	Username    string `mapstructure:"username" yaml:"username"`
	Password    string `mapstructure:"password" yaml:"password"`
	TopicPrefix string `mapstructure:"topic_prefix" yaml:"topic_prefix"`
	QoS         int    `mapstructure:"qos" yaml:"qos"`
}

// SchedulerConfig 주기 작업 설정
type SchedulerConfig struct {
	Enabled       bool `mapstructure:"enabled" yaml:"enabled"`
	StatsInterval int  `mapstructure:"stats_interval" yaml:"stats_interval"` // seconds
}

// Load 설정 로드 (기본값 < config.yaml < .env/환경변수)
// path가 파일이면 해당 파일을, 디렉터리면 그 안의 config.yaml을 읽는다.
func Load(path string) (*Config, error) {
	// .env 파일은 선택사항
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if path != "" {
		if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
			v.SetConfigFile(path)
		} else {
			v.AddConfigPath(path)
			v.SetConfigName("config")
			v.SetConfigType("yaml")
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.idle_timeout", d.Server.IdleTimeout)
	v.SetDefault("server.max_upload_mb", d.Server.MaxUploadMB)
	v.SetDefault("server.cors_origins", d.Server.CORSOrigins)

	v.SetDefault("database.driver", d.Database.Driver)
	v.SetDefault("database.sqlite.path", d.Database.SQLite.Path)
	v.SetDefault("database.sqlite.busy_timeout", d.Database.SQLite.BusyTimeout)
	v.SetDefault("database.mysql.host", d.Database.MySQL.Host)
	v.SetDefault("database.mysql.port", d.Database.MySQL.Port)
	v.SetDefault("database.mysql.user", d.Database.MySQL.User)
	v.SetDefault("database.mysql.password", d.Database.MySQL.Password)
	v.SetDefault("database.mysql.dbname", d.Database.MySQL.DBName)
	v.SetDefault("database.postgres.host", d.Database.Postgres.Host)
	v.SetDefault("database.postgres.port", d.Database.Postgres.Port)
	v.SetDefault("database.postgres.user", d.Database.Postgres.User)
	v.SetDefault("database.postgres.password", d.Database.Postgres.Password)
	v.SetDefault("database.postgres.dbname", d.Database.Postgres.DBName)
	v.SetDefault("database.postgres.sslmode", d.Database.Postgres.SSLMode)
	v.SetDefault("database.max_open_conns", d.Database.MaxOpenConns)
	v.SetDefault("database.max_idle_conns", d.Database.MaxIdleConns)
	v.SetDefault("database.conn_max_lifetime", d.Database.ConnMaxLifetime)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.dir", d.Logging.Dir)
	v.SetDefault("logging.color", d.Logging.Color)
	v.SetDefault("logging.show_caller", d.Logging.ShowCaller)
	v.SetDefault("logging.max_size_mb", d.Logging.MaxSizeMB)
	v.SetDefault("logging.max_age_days", d.Logging.MaxAgeDays)

	v.SetDefault("influxdb.enabled", d.InfluxDB.Enabled)
	v.SetDefault("influxdb.url", d.InfluxDB.URL)
	v.SetDefault("influxdb.token", d.InfluxDB.Token)
	v.SetDefault("influxdb.org", d.InfluxDB.Org)
	v.SetDefault("influxdb.bucket", d.InfluxDB.Bucket)
	v.SetDefault("influxdb.batch_size", d.InfluxDB.BatchSize)
	v.SetDefault("influxdb.flush_interval", d.InfluxDB.FlushInterval)

	v.SetDefault("mqtt.enabled", d.MQTT.Enabled)
	v.SetDefault("mqtt.broker", d.MQTT.Broker)
	v.SetDefault("mqtt.client_id", d.MQTT.ClientID)
	v.SetDefault("mqtt.username", d.MQTT.Username)
	v.SetDefault("mqtt.password", d.MQTT.Password)
	v.SetDefault("mqtt.topic_prefix", d.MQTT.TopicPrefix)
	v.SetDefault("mqtt.qos", d.MQTT.QoS)

	v.SetDefault("scheduler.enabled", d.Scheduler.Enabled)
	v.SetDefault("scheduler.stats_interval", d.Scheduler.StatsInterval)
}

// Default 기본 설정
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         5000,
			ReadTimeout:  15,
			WriteTimeout: 30,
			IdleTimeout:  60,
			MaxUploadMB:  16,
			CORSOrigins:  []string{"*"},
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			SQLite: SQLiteConfig{
				Path:        "./iot.db",
				BusyTimeout: 5000,
			},
			MySQL: MySQLConfig{
				Host:   "localhost",
				Port:   3306,
				User:   "root",
				DBName: "sensorhub",
			},
			Postgres: PostgresConfig{
				Host:    "localhost",
				Port:    5432,
				User:    "postgres",
				DBName:  "sensorhub",
				SSLMode: "disable",
			},
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 3600,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Dir:        "./logs",
			Color:      true,
			MaxSizeMB:  10,
			MaxAgeDays: 7,
		},
		InfluxDB: InfluxDBConfig{
			URL:           "http://localhost:8086",
			Org:           "sensorhub",
			Bucket:        "telemetry",
			BatchSize:     100,
			FlushInterval: 10,
		},
		MQTT: MQTTConfig{
			Broker:      "tcp://localhost:1883",
			ClientID:    "sensorhub-bridge",
			TopicPrefix: "sensorhub",
			QoS:         1,
		},
		Scheduler: SchedulerConfig{
			Enabled:       true,
			StatsInterval: 3600,
		},
	}
}

// Validate 설정 검증
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port out of range: %d", c.Server.Port)
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("server max_upload_mb must be positive")
	}

	switch c.Database.Driver {
	case "sqlite":
		if c.Database.SQLite.Path == "" {
			return fmt.Errorf("sqlite path is required")
		}
	case "mysql":
		if c.Database.MySQL.Host == "" {
			return fmt.Errorf("mysql host is required")
		}
		if c.Database.MySQL.User == "" {
			return fmt.Errorf("mysql user is required")
		}
		if c.Database.MySQL.DBName == "" {
			return fmt.Errorf("mysql database name is required")
		}
	case "postgres":
		if c.Database.Postgres.Host == "" {
			return fmt.Errorf("postgres host is required")
		}
		if c.Database.Postgres.User == "" {
			return fmt.Errorf("postgres user is required")
		}
		if c.Database.Postgres.DBName == "" {
			return fmt.Errorf("postgres database name is required")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	if c.InfluxDB.Enabled && (c.InfluxDB.URL == "" || c.InfluxDB.Token == "" || c.InfluxDB.Org == "" || c.InfluxDB.Bucket == "") {
		return fmt.Errorf("influxdb is enabled but url, token, org and bucket are not all set")
	}
	if c.MQTT.Enabled && c.MQTT.Broker == "" {
		return fmt.Errorf("mqtt is enabled but broker is empty")
	}
	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		return fmt.Errorf("mqtt qos must be 0, 1 or 2")
	}
	return nil
}

// DSN 드라이버별 접속 문자열
func (c *Config) DSN() string {
	db := c.Database
	switch db.Driver {
	case "sqlite":
		// modernc.org/sqlite 는 _pragma 파라미터로 PRAGMA 를 적용한다
		return fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)", db.SQLite.Path, db.SQLite.BusyTimeout)
	case "mysql":
		m := db.MySQL
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
			m.User, m.Password, m.Host, m.Port, m.DBName)
	case "postgres":
		p := db.Postgres
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(p.User, p.Password),
			Host:     fmt.Sprintf("%s:%d", p.Host, p.Port),
			Path:     "/" + p.DBName,
			RawQuery: "sslmode=" + url.QueryEscape(p.SSLMode),
		}
		return u.String()
	default:
		return ""
	}
}

// Addr HTTP 리슨 주소
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// MaxUploadBytes 업로드 최대 크기 (bytes)
func (s ServerConfig) MaxUploadBytes() int64 {
	return int64(s.MaxUploadMB) << 20
}

// Timeout 초 단위 값을 time.Duration으로 변환
func Timeout(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

// YAML 유효 설정을 YAML로 출력 (비밀값은 가림)
func (c *Config) YAML() ([]byte, error) {
	redacted := *c
	if redacted.Database.MySQL.Password != "" {
		redacted.Database.MySQL.Password = "****"
	}
	if redacted.Database.Postgres.Password != "" {
		redacted.Database.Postgres.Password = "****"
	}
	if redacted.InfluxDB.Token != "" {
		redacted.InfluxDB.Token = "****"
	}
	if redacted.MQTT.Password != "" {
		redacted.MQTT.Password = "****"
	}
	return yaml.Marshal(&redacted)
}
