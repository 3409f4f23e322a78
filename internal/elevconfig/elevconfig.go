package elevconfig

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/wesleywatkins/KernelElevator/internal/logger"
	"gopkg.in/yaml.v3"
)

var Log = logger.GetLogger()

const (
	DEFAULT_BROADCAST_ADDRESS = "127.0.0.1:9999"
	DEFAULT_BROADCAST_PERIOD  = time.Second
)

// Keys read from the .env file. They override the YAML file.
const (
	ENV_LOG_LEVEL           = "ELEVATOR_LOG_LEVEL"
	ENV_IDENTIFIER          = "ELEVATOR_ID"
	ENV_BROADCAST_ADDRESS   = "ELEVATOR_BROADCAST_ADDRESS"
	ENV_BROADCAST_PERIOD    = "ELEVATOR_BROADCAST_PERIOD"
)

// Config holds the operator settings. Building size, car limits and travel
// timings are fixed in elevconsts and cannot be set here.
type Config struct {
	LogLevel         string        `yaml:"log_level"`
	Identifier       string        `yaml:"identifier"`
	BroadcastAddress string        `yaml:"broadcast_address"`
	BroadcastPeriod  time.Duration `yaml:"broadcast_period"`
}

func Default() Config {
	return Config{
		LogLevel:         "info",
		BroadcastAddress: DEFAULT_BROADCAST_ADDRESS,
		BroadcastPeriod:  DEFAULT_BROADCAST_PERIOD,
	}
}

// Load starts from Default, applies the YAML file at configPath and then the
// .env file at envPath. Either path may be empty or point to a missing file.
func Load(configPath string, envPath string) (Config, error) {
	c := Default()

	if configPath != "" {
		if err := c.loadYAML(configPath); err != nil {
			return c, err
		}
	}
	if envPath != "" {
		if err := c.loadEnv(envPath); err != nil {
			return c, err
		}
	}
	return c, c.Validate()
}

func (c *Config) loadYAML(path string) error {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		Log.Debug().Msgf("No config file at %v, using defaults", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("error opening config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	err = decoder.Decode(c)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("error decoding config file %v: %w", path, err)
	}
	return nil
}

func (c *Config) loadEnv(path string) error {
	envFile, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		Log.Debug().Msgf("No env file at %v", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("error loading env file: %w", err)
	}

	if value, ok := envFile[ENV_LOG_LEVEL]; ok {
		c.LogLevel = value
	}
	if value, ok := envFile[ENV_IDENTIFIER]; ok {
		c.Identifier = value
	}
	if value, ok := envFile[ENV_BROADCAST_ADDRESS]; ok {
		c.BroadcastAddress = value
	}

	if value, ok := envFile[ENV_BROADCAST_PERIOD]; ok {
		period, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("error converting %v to a duration: %w", ENV_BROADCAST_PERIOD, err)
		}
		c.BroadcastPeriod = period
	}
	return nil
}

func (c Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.BroadcastPeriod < 0 {
		return errors.New("broadcast period must not be negative")
	}
	return nil
}
