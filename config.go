package framesplit

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/puzpuzpuz/xsync/v3"
	"gopkg.in/yaml.v3"

	"github.com/go-tabular/framesplit/types"
)

// DefaultMinPartitionSize is the default lower bound on any computed
// chunksize. It prevents a large split count from shattering a small frame
// into an excessive number of tiny partitions.
const DefaultMinPartitionSize = 32

// EnvMinPartitionSize is the environment variable consulted by
// ConfigFromEnv for the minimum partition size.
const EnvMinPartitionSize = "FRAMESPLIT_MIN_PARTITION_SIZE"

const minPartitionSizeKey = "min_partition_size"

// params is the process-wide parameter store. A concurrent map keeps reads
// lock-free: each chunksize computation performs exactly one Load, so a
// concurrent reconfiguration is observed as a single atomic snapshot and
// never as two different values within one call.
var params = xsync.NewMapOf[string, int64]()

// MinPartitionSize returns the current process-wide minimum partition size.
//
// Returns:
//   - int: The configured floor, or DefaultMinPartitionSize if never set
func MinPartitionSize() int {
	if v, ok := params.Load(minPartitionSizeKey); ok {
		return int(v)
	}

	return DefaultMinPartitionSize
}

// SetMinPartitionSize sets the process-wide minimum partition size.
//
// Safe to call concurrently with in-flight chunksize computations; each
// computation observes either the old or the new value, never a mix.
//
// Parameters:
//   - n: New floor, must be >= 1
//
// Returns:
//   - error: ErrInvalidMinPartitionSize if n < 1, nil otherwise
func SetMinPartitionSize(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", types.ErrInvalidMinPartitionSize, n)
	}

	params.Store(minPartitionSizeKey, int64(n))

	return nil
}

// Config is the configuration for the framesplit library.
type Config struct {
	// MinPartitionSize is the lower bound on any computed chunksize.
	// A value of 0 means "use the default" (DefaultMinPartitionSize).
	MinPartitionSize int `yaml:"minPartitionSize"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		MinPartitionSize: DefaultMinPartitionSize,
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.MinPartitionSize == 0 {
		cfg.MinPartitionSize = defaults.MinPartitionSize
	}
}

// Validate checks configuration constraints and returns an error for invalid
// values.
//
// Returns:
//   - error: Validation error with clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.MinPartitionSize < 1 {
		return fmt.Errorf(
			"%w: MinPartitionSize (%d) must be >= 1",
			types.ErrInvalidConfig, cfg.MinPartitionSize,
		)
	}

	return nil
}

// Apply installs the configuration into the process-wide parameter store.
//
// Returns:
//   - error: Validation error if the configuration is invalid
func (cfg Config) Apply() error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	return SetMinPartitionSize(cfg.MinPartitionSize)
}

// LoadConfig reads a YAML configuration document, applies defaults for
// missing fields, and validates the result. It does not install the
// configuration; call Apply for that.
//
// Parameters:
//   - r: Reader supplying the YAML document
//
// Returns:
//   - Config: Parsed configuration with defaults applied
//   - error: Decode or validation error
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ConfigFromEnv builds a configuration from environment variables, falling
// back to defaults for unset ones. FRAMESPLIT_MIN_PARTITION_SIZE supplies the
// minimum partition size.
//
// Returns:
//   - Config: Parsed configuration
//   - error: Parse or validation error for malformed values
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if raw := os.Getenv(EnvMinPartitionSize); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %v", types.ErrInvalidConfig, EnvMinPartitionSize, raw, err)
		}
		cfg.MinPartitionSize = n
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
