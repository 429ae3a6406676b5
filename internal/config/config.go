package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/player-remote-control/internal/app"
	"github.com/atomicstack/player-remote-control/internal/player"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Tunables player.Tunables
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envSession  = "PLAYER_REMOTE_SESSION"
	envWidth    = "PLAYER_REMOTE_WIDTH"
	envHeight   = "PLAYER_REMOTE_HEIGHT"
	envVerbose  = "PLAYER_REMOTE_VERBOSE"
	envTrace    = "PLAYER_REMOTE_TRACE"
	envLogFile  = "PLAYER_REMOTE_LOG_FILE"
	envTunables = "PLAYER_REMOTE_TUNABLES"
)

// tunablesFile is the YAML shape of the optional tuning file. Zero values
// fall back to the engine defaults.
type tunablesFile struct {
	Scroll struct {
		Tc              float64 `yaml:"tc"`
		MinimumVelocity float64 `yaml:"minimum_velocity"`
	} `yaml:"scroll"`
	MultiTap struct {
		TimeoutMs int `yaml:"timeout_ms"`
	} `yaml:"multitap"`
	Input struct {
		RepeatWindowMs int `yaml:"repeat_window_ms"`
	} `yaml:"input"`
	Volume struct {
		RepeatRate  float64 `yaml:"repeat_rate"`
		RepeatAccel float64 `yaml:"repeat_accel"`
	} `yaml:"volume"`
	Screen2 struct {
		IntervalMs int `yaml:"interval_ms"`
	} `yaml:"screen2"`
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("player-remote-control", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	sessionName := fs.String("session", envOrDefault(env, envSession, "default"), "name for the control session")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	tunables := fs.String("tunables", envOrDefault(env, envTunables, ""), "path to a YAML file of scroll and input tuning values")
	listModes := fs.Bool("list-modes", false, "print the registered modes and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *sessionName == "" {
		return Config{}, fmt.Errorf("session name must not be empty")
	}

	tun, screen2Interval, err := loadTunables(*tunables)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			SessionName:     *sessionName,
			Width:           *width,
			Height:          *height,
			Verbose:         *verbose,
			ListModes:       *listModes,
			Screen2Interval: screen2Interval,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Tunables: tun,
		Flags: map[string]string{
			"session":  *sessionName,
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"trace":    strconv.FormatBool(*trace),
			"verbose":  strconv.FormatBool(*verbose),
			"logFile":  *logFile,
			"tunables": *tunables,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// loadTunables reads the optional YAML tuning file and merges it onto the
// engine defaults. A missing path returns the defaults unchanged.
func loadTunables(path string) (player.Tunables, time.Duration, error) {
	tun := player.DefaultTunables()
	screen2 := time.Duration(0)
	if path == "" {
		return tun, screen2, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return tun, screen2, fmt.Errorf("read tunables: %w", err)
	}
	var file tunablesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return tun, screen2, fmt.Errorf("parse tunables: %w", err)
	}
	if file.Scroll.Tc > 0 {
		tun.Tc = file.Scroll.Tc
	}
	if file.Scroll.MinimumVelocity > 0 {
		tun.MinimumVelocity = file.Scroll.MinimumVelocity
	}
	if file.MultiTap.TimeoutMs > 0 {
		tun.MultiTapTimeout = time.Duration(file.MultiTap.TimeoutMs) * time.Millisecond
	}
	if file.Input.RepeatWindowMs > 0 {
		tun.RepeatWindow = time.Duration(file.Input.RepeatWindowMs) * time.Millisecond
	}
	if file.Volume.RepeatRate > 0 {
		tun.RepeatRate = file.Volume.RepeatRate
	}
	if file.Volume.RepeatAccel > 0 {
		tun.RepeatAccel = file.Volume.RepeatAccel
	}
	if file.Screen2.IntervalMs > 0 {
		screen2 = time.Duration(file.Screen2.IntervalMs) * time.Millisecond
	}
	return tun, screen2, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
