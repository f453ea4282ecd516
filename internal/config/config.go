// internal/config/config.go
package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"

	"escpos-service/pkg/escpos"
)

// Config represents the application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Decoder  DecoderConfig  `mapstructure:"decoder"`
	Capture  CaptureConfig  `mapstructure:"capture"`
	OrderAPI OrderAPIConfig `mapstructure:"orderapi"`
	Database DatabaseConfig `mapstructure:"database"`
	Security SecurityConfig `mapstructure:"security"`
}

// AppConfig represents application metadata
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	// MaxBodyBytes caps uploaded receipt streams.
	MaxBodyBytes int64     `mapstructure:"max_body_bytes"`
	TLS          TLSConfig `mapstructure:"tls"`
}

// TLSConfig represents TLS configuration
type TLSConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	CertFile string `mapstructure:"cert_file"`
	KeyFile  string `mapstructure:"key_file"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// DecoderConfig is the initial state every ESC/POS decode starts from
type DecoderConfig struct {
	Device             string `mapstructure:"device"`
	CodePage           int    `mapstructure:"code_page"`
	ICS                int    `mapstructure:"ics"`
	Kanji              bool   `mapstructure:"kanji"`
	SBCSFontPattern    int    `mapstructure:"sbcs_font_pattern"`
	MBCSFontPattern    int    `mapstructure:"mbcs_font_pattern"`
	DisplayFontPattern int    `mapstructure:"display_font_pattern"`
}

// CaptureConfig represents the receipt capture loop configuration
type CaptureConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Source is "serial", "usb" or "tcp".
	Source     string            `mapstructure:"source"`
	MerchantID string            `mapstructure:"merchant_id"`
	Serial     SerialPortConfig  `mapstructure:"serial"`
	USB        USBPortConfig     `mapstructure:"usb"`
	TCP        TCPListenerConfig `mapstructure:"tcp"`
	// CutSequence is the hex encoded byte pair that ends a receipt.
	CutSequence string        `mapstructure:"cut_sequence"`
	SaveDir     string        `mapstructure:"save_dir"`
	ReadSize    int           `mapstructure:"read_size"`
	MaxReceipt  int           `mapstructure:"max_receipt_bytes"`
	RetryDelay  time.Duration `mapstructure:"retry_delay"`
}

// SerialPortConfig represents serial port configuration
type SerialPortConfig struct {
	Port     string        `mapstructure:"port"`
	BaudRate int           `mapstructure:"baud_rate"`
	DataBits int           `mapstructure:"data_bits"`
	StopBits int           `mapstructure:"stop_bits"`
	Parity   string        `mapstructure:"parity"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// USBPortConfig represents USB port configuration
type USBPortConfig struct {
	VendorID         uint16        `mapstructure:"vendor_id"`
	ProductID        uint16        `mapstructure:"product_id"`
	Interface        int           `mapstructure:"interface"`
	Endpoint         int           `mapstructure:"endpoint"`
	Timeout          time.Duration `mapstructure:"timeout"`
	BulkTransferSize int           `mapstructure:"bulk_transfer_size"`
}

// TCPListenerConfig is a raw printing port the POS prints to like a network printer
type TCPListenerConfig struct {
	Address     string        `mapstructure:"address"`
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
	// IdleTimeout drops a connected client that sends nothing for this long.
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
}

// OrderAPIConfig represents the order ingestion API the parsed receipts go to
type OrderAPIConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	BaseURL       string        `mapstructure:"base_url"`
	Authorization string        `mapstructure:"authorization"`
	PlaceUUID     string        `mapstructure:"place_uuid"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	DBName         string        `mapstructure:"dbname"`
	SSLMode        string        `mapstructure:"sslmode"`
	MaxOpenConns   int           `mapstructure:"max_open_conns"`
	MaxIdleConns   int           `mapstructure:"max_idle_conns"`
	MaxLifetime    time.Duration `mapstructure:"max_lifetime"`
	MigrationsPath string        `mapstructure:"migrations_path"`
	Retention      time.Duration `mapstructure:"retention"`
}

// SecurityConfig represents security configuration
type SecurityConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load loads configuration from file and environment variables. An empty
// path searches the working directory and ./configs for config.yaml.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	// Environment variable support
	v.SetEnvPrefix("ESCPOS_SERVICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "escpos-service")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.debug", false)

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8085")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.max_body_bytes", 8<<20)
	v.SetDefault("server.tls.enabled", false)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stdout")
	v.SetDefault("logging.max_size", 100)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age", 28)
	v.SetDefault("logging.compress", true)

	// Decoder defaults
	v.SetDefault("decoder.device", "printer")
	v.SetDefault("decoder.code_page", 850)
	v.SetDefault("decoder.ics", 0)
	v.SetDefault("decoder.kanji", false)
	v.SetDefault("decoder.sbcs_font_pattern", 1)
	v.SetDefault("decoder.mbcs_font_pattern", 1)
	v.SetDefault("decoder.display_font_pattern", 1)

	// Capture defaults
	v.SetDefault("capture.enabled", false)
	v.SetDefault("capture.source", "serial")
	v.SetDefault("capture.merchant_id", "")
	v.SetDefault("capture.cut_sequence", "1b6d")
	v.SetDefault("capture.save_dir", "")
	v.SetDefault("capture.read_size", 4096)
	v.SetDefault("capture.max_receipt_bytes", 4<<20)
	v.SetDefault("capture.retry_delay", "5s")
	v.SetDefault("capture.serial.port", "/dev/ttyUSB0")
	v.SetDefault("capture.serial.baud_rate", 9600)
	v.SetDefault("capture.serial.data_bits", 8)
	v.SetDefault("capture.serial.stop_bits", 1)
	v.SetDefault("capture.serial.parity", "none")
	v.SetDefault("capture.serial.timeout", "500ms")
	v.SetDefault("capture.usb.interface", 0)
	v.SetDefault("capture.usb.endpoint", 1)
	v.SetDefault("capture.usb.timeout", "500ms")
	v.SetDefault("capture.usb.bulk_transfer_size", 512)
	v.SetDefault("capture.tcp.address", ":9100")
	v.SetDefault("capture.tcp.read_timeout", "500ms")
	v.SetDefault("capture.tcp.idle_timeout", "5m")

	// Order API defaults
	v.SetDefault("orderapi.enabled", false)
	v.SetDefault("orderapi.base_url", "http://localhost:8080")
	v.SetDefault("orderapi.timeout", "10s")

	// Database defaults
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "escpos_service")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.max_lifetime", "5m")
	v.SetDefault("database.migrations_path", "file://migrations")
	v.SetDefault("database.retention", "720h")

	// Security defaults
	v.SetDefault("security.allowed_origins", []string{"*"})
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Server.Host == "" {
		return fmt.Errorf("server.host is required")
	}
	if config.Server.Port == "" {
		return fmt.Errorf("server.port is required")
	}

	validEnvs := []string{"development", "staging", "production", "test"}
	if !slices.Contains(validEnvs, config.App.Environment) {
		return fmt.Errorf("app.environment must be one of: %v", validEnvs)
	}

	validLevels := []string{"debug", "info", "warn", "error", "fatal"}
	if !slices.Contains(validLevels, config.Logging.Level) {
		return fmt.Errorf("logging.level must be one of: %v", validLevels)
	}

	d := config.Decoder
	if d.Device != "printer" && d.Device != "linedisplay" {
		return fmt.Errorf("decoder.device must be printer or linedisplay")
	}
	if d.CodePage < 0 {
		return fmt.Errorf("decoder.code_page must not be negative")
	}
	if d.ICS < 0 || d.ICS > 255 {
		return fmt.Errorf("decoder.ics must be a byte value")
	}
	if d.SBCSFontPattern < 1 || d.SBCSFontPattern > 9 {
		return fmt.Errorf("decoder.sbcs_font_pattern must be 1-9")
	}
	if d.MBCSFontPattern < 1 || d.MBCSFontPattern > 5 {
		return fmt.Errorf("decoder.mbcs_font_pattern must be 1-5")
	}
	if d.DisplayFontPattern < 1 || d.DisplayFontPattern > 2 {
		return fmt.Errorf("decoder.display_font_pattern must be 1-2")
	}

	if config.Capture.Enabled {
		validSources := []string{"serial", "usb", "tcp"}
		if !slices.Contains(validSources, config.Capture.Source) {
			return fmt.Errorf("capture.source must be one of: %v", validSources)
		}
		if len(strings.TrimSpace(config.Capture.CutSequence)) == 0 {
			return fmt.Errorf("capture.cut_sequence is required")
		}
	}

	if config.OrderAPI.Enabled && config.OrderAPI.BaseURL == "" {
		return fmt.Errorf("orderapi.base_url is required when orderapi is enabled")
	}

	if config.Database.Enabled && config.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}

	return nil
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host, c.Database.Port, c.Database.User,
		c.Database.Password, c.Database.DBName, c.Database.SSLMode)
}

// GetServerAddr returns the server address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// IsProduction checks if the environment is production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment checks if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsDebugEnabled checks if debug mode is enabled
func (c *Config) IsDebugEnabled() bool {
	return c.App.Debug || c.IsDevelopment()
}

// EscPOS converts the decoder section into the decoder's initial state
func (d DecoderConfig) EscPOS() (escpos.Config, error) {
	device, err := escpos.ParseDeviceType(d.Device)
	if err != nil {
		return escpos.Config{}, err
	}
	cfg := escpos.Config{
		Device:   device,
		CodePage: d.CodePage,
		ICS:      byte(d.ICS),
		Kanji:    d.Kanji,
		Fonts: escpos.FontPatterns{
			SBCS:    d.SBCSFontPattern,
			MBCS:    d.MBCSFontPattern,
			Display: d.DisplayFontPattern,
		},
	}
	return cfg, cfg.Validate()
}
