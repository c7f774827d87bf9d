// Package config resolves run settings from flags, environment, .env and config files.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/komsit37/cryptosent/pkg/cryptosent/types"
)

// EnvPrefix namespaces environment overrides, e.g. CRYPTOSENT_SEED.
const EnvPrefix = "CRYPTOSENT"

// Config holds every setting of a run. Keys match the CLI flag names.
type Config struct {
	Config      string   `mapstructure:"config"`
	Universe    string   `mapstructure:"universe"`
	Seed        uint64   `mapstructure:"seed"`
	EndDate     string   `mapstructure:"end-date" validate:"omitempty,datetime=2006-01-02"`
	Format      string   `mapstructure:"format" validate:"oneof=report json table tickers"`
	Out         string   `mapstructure:"out"`
	DataOut     string   `mapstructure:"data-out"`
	MetricsFile string   `mapstructure:"metrics-file"`
	Assets      string   `mapstructure:"assets"`
	Trend       string   `mapstructure:"trend" validate:"omitempty,oneof=uptrend downtrend volatile stable recovery correction"`
	Columns     []string `mapstructure:"columns"`
	Sets        []string `mapstructure:"set"`
	Workers     int      `mapstructure:"workers" validate:"min=1,max=64"`
	ChartHeight int      `mapstructure:"chart-height" validate:"min=1,max=32"`
	Width       int      `mapstructure:"width" validate:"min=0"`
	MaxColWidth int      `mapstructure:"max-col-width" validate:"min=0"`
	Color       bool     `mapstructure:"color"`
	PrettyJSON  bool     `mapstructure:"pretty"`
	LogLevel    string   `mapstructure:"log-level" validate:"oneof=debug info warn error"`
	LogEnv      string   `mapstructure:"log-env" validate:"oneof=development production"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("config", "")
	v.SetDefault("universe", "")
	v.SetDefault("seed", uint64(0))
	v.SetDefault("end-date", "")
	v.SetDefault("format", "report")
	v.SetDefault("out", "")
	v.SetDefault("data-out", "")
	v.SetDefault("metrics-file", "")
	v.SetDefault("assets", "")
	v.SetDefault("trend", "")
	v.SetDefault("columns", []string{})
	v.SetDefault("set", []string{})
	v.SetDefault("workers", 4)
	v.SetDefault("chart-height", 8)
	v.SetDefault("width", 0)
	v.SetDefault("max-col-width", 40)
	v.SetDefault("color", false)
	v.SetDefault("pretty", true)
	v.SetDefault("log-level", "info")
	v.SetDefault("log-env", "development")
}

// LoadDotEnv loads .env files into the process environment when present.
// Existing variables win.
func LoadDotEnv(paths ...string) {
	_ = godotenv.Load(paths...)
}

// Load resolves a Config from v (flags bound by the caller), the environment and the
// optional config file named by the "config" key, then validates it.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.Trend = strings.ToLower(strings.TrimSpace(c.Trend))
	if err := Validate(c); err != nil {
		return Config{}, err
	}
	return c, nil
}

var validate = validator.New()

// Validate checks struct constraints and reports every violated field.
func Validate(c Config) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %s=%s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// End returns the last day of the series: EndDate when set, otherwise now.
func (c Config) End(now time.Time) (time.Time, error) {
	if c.EndDate == "" {
		return now, nil
	}
	t, err := time.ParseInLocation(types.DateLayout, c.EndDate, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("end date %q: %w", c.EndDate, err)
	}
	return t, nil
}
