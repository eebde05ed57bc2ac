package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3/log"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type serverConfig struct {
	Port        int    `koanf:"port" validate:"required"`
	Mode        string `koanf:"mode" validate:"required"`
	Concurrency int    `koanf:"concurrency"`
	BodyLimit   int    `koanf:"body_limit"`
	AppName     string `koanf:"app_name" validate:"required"`
}

type logLevel string

const (
	Debug logLevel = "debug"
	Info  logLevel = "info"
	Warn  logLevel = "warn"
	Error logLevel = "error"
	Fatal logLevel = "fatal"
	Panic logLevel = "panic"
)

type Module string

const (
	ModuleServer   Module = "server"
	ModuleSetting  Module = "setting"
	ModuleDatabase Module = "database"
	ModuleS3       Module = "s3"
	ModuleOpenAI   Module = "openai"
	ModuleUpload   Module = "upload"
	ModuleIngest   Module = "ingest"
	ModuleChat     Module = "chat"
	ModuleBot      Module = "bot"
	ModuleWidget   Module = "widget"
	ModuleDocPrep  Module = "docprep"
)

type databaseConfig struct {
	Host         string   `koanf:"host" validate:"required"`
	Port         int      `koanf:"port" validate:"required"`
	User         string   `koanf:"user" validate:"required"`
	Password     string   `koanf:"password"`
	Name         string   `koanf:"name" validate:"required"`
	Replicas     []string `koanf:"replicas"`
	MaxIdleConns int      `koanf:"max_idle_conns"`
	MaxOpenConns int      `koanf:"max_open_conns"`
	MaxLifetime  int      `koanf:"max_lifetime"`
}

type openaiConfig struct {
	Key         string  `koanf:"key"`
	Model       string  `koanf:"model" validate:"required"`
	Temperature float32 `koanf:"temperature"`
	MaxTokens   int     `koanf:"max_tokens"`
}

type s3Config struct {
	Endpoint  string `koanf:"endpoint"`
	AccessKey string `koanf:"access_key"`
	SecretKey string `koanf:"secret_key"`
	Region    string `koanf:"region"`
	UseSSL    bool   `koanf:"use_ssl"`
	Bucket    string `koanf:"bucket"`
}

type corsConfig struct {
	AllowOrigins []string `koanf:"allow_origins"`
	AllowMethods []string `koanf:"allow_methods"`
	AllowHeaders []string `koanf:"allow_headers"`
}

// uploadConfig carries the document-preparation limits. They are explicit
// configuration (not hidden globals) so tests can vary them per call.
type uploadConfig struct {
	MaxFiles        int `koanf:"max_files" validate:"required"`
	MaxFileSizeMB   int `koanf:"max_file_size_mb" validate:"required"`
	ChunkSize       int `koanf:"chunk_size" validate:"required"`
	ChunkOverlap    int `koanf:"chunk_overlap"`
	ContextMaxChars int `koanf:"context_max_chars" validate:"required"`
}

type widgetConfig struct {
	ScriptURL string `koanf:"script_url"`
	BaseURL   string `koanf:"base_url"`
}

type config struct {
	Server   serverConfig   `koanf:"server"`
	Database databaseConfig `koanf:"database"`
	OpenAI   openaiConfig   `koanf:"openai"`
	S3       s3Config       `koanf:"s3"`
	Cors     corsConfig     `koanf:"cors"`
	Upload   uploadConfig   `koanf:"upload"`
	Widget   widgetConfig   `koanf:"widget"`
	LogLevel logLevel       `koanf:"log_level"`
	Dns      string         `koanf:"dns"`
}

func buildMySQLDSN(cfg databaseConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Name,
	)
}

var defaultConfig = config{
	Server: serverConfig{
		Port:        8000,
		Mode:        "release",
		Concurrency: 256,
		BodyLimit:   32 << 20,
		AppName:     "docuchat",
	},
	Database: databaseConfig{
		Host:         "127.0.0.1",
		Port:         3306,
		User:         "root",
		Password:     "",
		Name:         "docuchat",
		MaxIdleConns: 4,
		MaxOpenConns: 16,
		MaxLifetime:  30,
	},
	OpenAI: openaiConfig{
		Key:         "",
		Model:       "gpt-4o-mini",
		Temperature: 0.2,
		MaxTokens:   512,
	},
	S3: s3Config{
		Endpoint:  "http://localhost:9000",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Region:    "us-east-1",
		UseSSL:    false,
		Bucket:    "documents",
	},
	Upload: uploadConfig{
		MaxFiles:        5,
		MaxFileSizeMB:   5,
		ChunkSize:       500,
		ChunkOverlap:    50,
		ContextMaxChars: 8000,
	},
	Widget: widgetConfig{
		ScriptURL: "https://cdn.docuchat.local/widget.js",
		BaseURL:   "http://localhost:8000",
	},
	LogLevel: Info,
}

var (
	Cfg  = defaultConfig
	once sync.Once
)

// Init loads configuration from the given yaml file (if present) and the
// APP_-prefixed environment, then validates the result. Safe to call more
// than once; only the first call loads.
func Init(path string) error {
	var initErr error
	once.Do(func() {
		k := koanf.New(".")
		Cfg = defaultConfig

		if e := k.Load(file.Provider(path), yaml.Parser()); e != nil && !errors.Is(e, os.ErrNotExist) {
			initErr = e
			return
		}

		// env APP_SERVER_PORT
		if e := k.Load(env.Provider("APP_", ".", func(s string) string {
			return strings.ToLower(strings.TrimPrefix(s, "APP_"))
		}), nil); e != nil {
			initErr = e
			return
		}

		if e := k.Unmarshal("", &Cfg); e != nil {
			initErr = fmt.Errorf("unmarshal config: %w", e)
			return
		}

		if Cfg.Dns == "" {
			Cfg.Dns = buildMySQLDSN(Cfg.Database)
		}

		validate := validator.New()
		if err := validate.Struct(Cfg); err != nil {
			if errs, ok := err.(validator.ValidationErrors); ok {
				var sb strings.Builder
				sb.WriteString(fmt.Sprintf("%v config validation failed:\n", ModuleSetting))
				for _, e := range errs {
					sb.WriteString(fmt.Sprintf("  %s: failed '%s' (value: %v)\n", e.Field(), e.Tag(), e.Value()))
				}
				log.Error(sb.String())
			} else {
				log.Errorf("config validation failed: %v", err)
			}
		}
	})
	return initErr
}

// MaxFileBytes returns the per-file upload ceiling in bytes.
func (u uploadConfig) MaxFileBytes() int64 {
	return int64(u.MaxFileSizeMB) << 20
}
