package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Log       LogConfig
	Animation AnimationConfig
	Landing   LandingConfig
	Mock      MockConfig
	Theme     ThemeConfig
	Trace     TraceConfig
}

// LogConfig controls the slog logger. An empty File disables logging.
type LogConfig struct {
	Level string
	File  string
}

// AnimationConfig holds transition and wrapper durations.
type AnimationConfig struct {
	Exit         time.Duration
	Enter        time.Duration
	WrapperEnter time.Duration `mapstructure:"wrapper_enter"`
	WrapperExit  time.Duration `mapstructure:"wrapper_exit"`
	FPS          int
}

// LandingConfig holds landing screen settings.
type LandingConfig struct {
	BootDelay time.Duration `mapstructure:"boot_delay"`
}

// MockConfig holds the simulated backend's delays and data.
type MockConfig struct {
	LoginDelay       time.Duration `mapstructure:"login_delay"`
	ResetDelay       time.Duration `mapstructure:"reset_delay"`
	SignupDelay      time.Duration `mapstructure:"signup_delay"`
	RegisteredEmails []string      `mapstructure:"registered_emails"`
}

// ThemeConfig selects the theme file and color profile.
type ThemeConfig struct {
	File       string
	Monochrome bool
}

// TraceConfig configures OTLP export. An empty Endpoint disables tracing.
type TraceConfig struct {
	Endpoint    string
	ServiceName string `mapstructure:"service_name"`
	Insecure    bool
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", File: defaultLogFile()},
		Animation: AnimationConfig{
			Exit:         150 * time.Millisecond,
			Enter:        300 * time.Millisecond,
			WrapperEnter: 300 * time.Millisecond,
			WrapperExit:  200 * time.Millisecond,
			FPS:          60,
		},
		Landing: LandingConfig{BootDelay: 700 * time.Millisecond},
		Mock: MockConfig{
			LoginDelay:  2000 * time.Millisecond,
			ResetDelay:  1500 * time.Millisecond,
			SignupDelay: 1500 * time.Millisecond,
			RegisteredEmails: []string{
				"user@example.com",
				"test@hakbangquest.com",
				"demo@fitness.app",
			},
		},
		Trace: TraceConfig{ServiceName: "hakbang", Insecure: true},
	}
}

// NewViper returns a viper instance carrying defaults and HAKBANG_ env
// overrides. Callers may bind flags on it before Load.
func NewViper() *viper.Viper {
	v := viper.New()
	d := Default()

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("animation.exit", d.Animation.Exit)
	v.SetDefault("animation.enter", d.Animation.Enter)
	v.SetDefault("animation.wrapper_enter", d.Animation.WrapperEnter)
	v.SetDefault("animation.wrapper_exit", d.Animation.WrapperExit)
	v.SetDefault("animation.fps", d.Animation.FPS)
	v.SetDefault("landing.boot_delay", d.Landing.BootDelay)
	v.SetDefault("mock.login_delay", d.Mock.LoginDelay)
	v.SetDefault("mock.reset_delay", d.Mock.ResetDelay)
	v.SetDefault("mock.signup_delay", d.Mock.SignupDelay)
	v.SetDefault("mock.registered_emails", d.Mock.RegisteredEmails)
	v.SetDefault("theme.file", "")
	v.SetDefault("theme.monochrome", false)
	v.SetDefault("trace.endpoint", "")
	v.SetDefault("trace.service_name", d.Trace.ServiceName)
	v.SetDefault("trace.insecure", d.Trace.Insecure)

	v.SetConfigType("toml")
	v.SetEnvPrefix("HAKBANG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration into v and decodes it. path overrides the config
// file location; otherwise HAKBANG_CONFIG, then ~/.config/hakbang/config.toml
// are tried. Only a missing file in the default location is tolerated. A .env
// file in the working directory is loaded first so it can feed env overrides.
func Load(v *viper.Viper, path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	if path == "" {
		path = os.Getenv("HAKBANG_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "hakbang"))
		}
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks invariants the UI relies on.
func (c Config) Validate() error {
	if c.Animation.FPS <= 0 {
		return fmt.Errorf("animation.fps must be positive, got %d", c.Animation.FPS)
	}
	if c.Animation.Exit < 0 || c.Animation.WrapperEnter < 0 || c.Animation.WrapperExit < 0 {
		return errors.New("animation durations must not be negative")
	}
	if c.Animation.Enter < c.Animation.Exit {
		return fmt.Errorf("animation.enter (%s) must not be shorter than animation.exit (%s)",
			c.Animation.Enter, c.Animation.Exit)
	}
	return nil
}

func defaultLogFile() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "hakbang", "hakbang.log")
}
