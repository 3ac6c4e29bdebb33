package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// Переменные окружения, переопределяющие значения из файла
const (
	EnvConfigPath    = "CONFIG_PATH"
	EnvStorageDriver = "STORAGE_DRIVER"
	EnvStoragePath   = "STORAGE_PATH"
	EnvDatabaseDSN   = "DATABASE_DSN"
)

// Драйверы хранилища
const (
	DriverFile     = "file"
	DriverBolt     = "bolt"
	DriverPostgres = "postgres"
	DriverMemory   = "memory" // без сохранения между перезапусками
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config корневая конфигурация сервиса
type Config struct {
	Server    ServerConfig              `toml:"server"`
	Logs      LogsConfig                `toml:"logs"`
	Metrics   MetricsConfig             `toml:"metrics"`
	Storage   StorageConfig             `toml:"storage"`
	Database  DatabaseConfig            `toml:"database"`
	Rules     RulesConfig               `toml:"rules"`
	Resources map[string]ResourceConfig `toml:"resources"`
	Hours     map[string]HoursConfig    `toml:"hours"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig выбор бэкенда хранения состояния
type StorageConfig struct {
	Driver string `toml:"driver"` // file | bolt | postgres | memory
	Path   string `toml:"path"`   // путь к файлу для file и bolt
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды

	// dsn переопределяет собранную строку подключения (из DATABASE_DSN)
	dsn string
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	if d.dsn != "" {
		return d.dsn
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RulesConfig числовые параметры правил допуска и ценообразования
type RulesConfig struct {
	HorizonDays             int          `toml:"horizon_days"`
	DiscountLeadDays        int          `toml:"discount_lead_days"`
	DiscountPercent         int          `toml:"discount_percent"`
	WeeklyDayQuota          int          `toml:"weekly_day_quota"`
	HarvesterConcurrency    int          `toml:"harvester_concurrency"`
	CrusherCooldownUnits    int          `toml:"crusher_cooldown_units"`
	IrradiatorCooldownUnits int          `toml:"irradiator_cooldown_units"`
	IrradiatorCooldownUses  int          `toml:"irradiator_cooldown_uses"`
	RefundTiers             []RefundTier `toml:"refund_tiers"`
}

type RefundTier struct {
	MinDays int `toml:"min_days"`
	Percent int `toml:"percent"`
}

// ResourceConfig описание ресурса; ключ таблицы - название вида ресурса
type ResourceConfig struct {
	Capacity           int     `toml:"capacity"`
	HourlyRate         float64 `toml:"hourly_rate"`
	BillPerHalfHour    bool    `toml:"bill_per_half_hour"`
	DownPaymentPercent int     `toml:"down_payment_percent"`
}

// HoursConfig окно работы на день недели; пустые значения - выходной
type HoursConfig struct {
	Open  string `toml:"open"`
	Close string `toml:"close"`
}

// Load читает конфигурацию из TOML файла, подставляет значения по умолчанию
// и применяет переопределения из переменных окружения.
// Отсутствующий файл не является ошибкой: используется конфигурация по умолчанию.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("%w: decode %s: %v", ErrInvalidConfig, path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: stat %s: %v", ErrInvalidConfig, path, err)
	}

	cfg.normalizeResources()
	cfg.applyEnv()
	cfg.fillDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	rules := domain.DefaultRules()
	tiers := make([]RefundTier, 0, len(rules.RefundTiers))
	for _, t := range rules.RefundTiers {
		tiers = append(tiers, RefundTier{MinDays: t.MinDays, Percent: t.Percent})
	}

	resources := make(map[string]ResourceConfig, len(domain.AllKinds))
	for _, r := range domain.DefaultResources() {
		resources[string(r.Kind)] = ResourceConfig{
			Capacity:           r.Capacity,
			HourlyRate:         r.HourlyRate,
			BillPerHalfHour:    r.BillPerHalfHour,
			DownPaymentPercent: r.DownPaymentPercent,
		}
	}

	hours := make(map[string]HoursConfig, 7)
	for day, w := range domain.DefaultOperatingHours() {
		hours[weekdayKey(day)] = HoursConfig{Open: w.Open.String(), Close: w.Close.String()}
	}

	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
			File:  "logs/app.log",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "facility_booking",
		},
		Storage: StorageConfig{
			Driver: DriverFile,
			Path:   "data/data.txt",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "facility_booking",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Rules: RulesConfig{
			HorizonDays:             rules.HorizonDays,
			DiscountLeadDays:        rules.DiscountLeadDays,
			DiscountPercent:         rules.DiscountPercent,
			WeeklyDayQuota:          rules.WeeklyDayQuota,
			HarvesterConcurrency:    rules.HarvesterConcurrency,
			CrusherCooldownUnits:    rules.CrusherCooldownUnits,
			IrradiatorCooldownUnits: rules.IrradiatorCooldownUnits,
			IrradiatorCooldownUses:  rules.IrradiatorCooldownUses,
			RefundTiers:             tiers,
		},
		Resources: resources,
		Hours:     hours,
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Storage.Driver {
	case DriverFile, DriverBolt:
		if c.Storage.Path == "" {
			return fmt.Errorf("%w: storage.path is required for driver %q", ErrInvalidConfig, c.Storage.Driver)
		}
	case DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if _, err := c.Catalog(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Catalog собирает неизменяемый каталог ресурсов и правил
func (c *Config) Catalog() (*domain.Catalog, error) {
	resources := make([]domain.Resource, 0, len(c.Resources))
	for name, rc := range c.Resources {
		kind, ok := domain.ParseResourceKind(name)
		if !ok {
			return nil, fmt.Errorf("unknown resource %q", name)
		}
		resources = append(resources, domain.Resource{
			Kind:               kind,
			Capacity:           rc.Capacity,
			HourlyRate:         rc.HourlyRate,
			BillPerHalfHour:    rc.BillPerHalfHour,
			DownPaymentPercent: rc.DownPaymentPercent,
		})
	}

	hours := make(domain.OperatingHours, 7)
	for name, hc := range c.Hours {
		day, ok := parseWeekday(name)
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q in hours", name)
		}
		window, err := parseWindow(hc)
		if err != nil {
			return nil, fmt.Errorf("hours.%s: %w", name, err)
		}
		hours[day] = window
	}

	tiers := make([]domain.RefundTier, 0, len(c.Rules.RefundTiers))
	for _, t := range c.Rules.RefundTiers {
		tiers = append(tiers, domain.RefundTier{MinDays: t.MinDays, Percent: t.Percent})
	}

	rules := domain.Rules{
		HorizonDays:             c.Rules.HorizonDays,
		DiscountLeadDays:        c.Rules.DiscountLeadDays,
		DiscountPercent:         c.Rules.DiscountPercent,
		WeeklyDayQuota:          c.Rules.WeeklyDayQuota,
		HarvesterConcurrency:    c.Rules.HarvesterConcurrency,
		CrusherCooldownUnits:    c.Rules.CrusherCooldownUnits,
		IrradiatorCooldownUnits: c.Rules.IrradiatorCooldownUnits,
		IrradiatorCooldownUses:  c.Rules.IrradiatorCooldownUses,
		RefundTiers:             tiers,
	}

	return domain.NewCatalog(resources, hours, rules)
}

// Timeouts возвращает таймауты для http.Server
func (s ServerConfig) Timeouts() (read, write, idle, shutdown time.Duration) {
	return time.Duration(s.ReadTimeout) * time.Second,
		time.Duration(s.WriteTimeout) * time.Second,
		time.Duration(s.IdleTimeout) * time.Second,
		time.Duration(s.ShutdownTimeout) * time.Second
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvStorageDriver); v != "" {
		c.Storage.Driver = v
	}
	if v := os.Getenv(EnvStoragePath); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv(EnvDatabaseDSN); v != "" {
		c.Database.dsn = v
	}
}

// fillDefaults восстанавливает значения, обнуленные пустыми секциями файла
func (c *Config) fillDefaults() {
	def := Default()
	if c.Metrics.Path == "" {
		c.Metrics.Path = def.Metrics.Path
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = def.Metrics.ServiceName
	}
	if c.Logs.Level == "" {
		c.Logs.Level = def.Logs.Level
	}
	if len(c.Resources) == 0 {
		c.Resources = def.Resources
	}
	if len(c.Hours) == 0 {
		c.Hours = def.Hours
	}
	if c.Rules.RefundTiers == nil {
		c.Rules.RefundTiers = def.Rules.RefundTiers
	}
}

// normalizeResources переводит синонимы ("hvc") в канонические имена,
// чтобы значение из файла заменило значение по умолчанию
func (c *Config) normalizeResources() {
	for name, rc := range c.Resources {
		kind, ok := domain.ParseResourceKind(name)
		if !ok || string(kind) == name {
			continue
		}
		delete(c.Resources, name)
		c.Resources[string(kind)] = rc
	}
}

func parseWindow(hc HoursConfig) (domain.DayWindow, error) {
	if hc.Open == "" && hc.Close == "" {
		return domain.DayWindow{}, nil
	}
	open, err := types.NewTimeStringFromString(hc.Open)
	if err != nil {
		return domain.DayWindow{}, fmt.Errorf("open: %w", err)
	}
	closeAt, err := types.NewTimeStringFromString(hc.Close)
	if err != nil {
		return domain.DayWindow{}, fmt.Errorf("close: %w", err)
	}
	if !open.IsBefore(closeAt) {
		return domain.DayWindow{}, fmt.Errorf("open %s must be before close %s", open, closeAt)
	}
	return domain.DayWindow{Open: open, Close: closeAt}, nil
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekday(name string) (time.Weekday, bool) {
	d, ok := weekdays[name]
	return d, ok
}

func weekdayKey(d time.Weekday) string {
	for name, day := range weekdays {
		if day == d {
			return name
		}
	}
	return ""
}
