package check

import (
	"github.com/pkg/errors"
)

// Config is the configuration of the checker.
type Config struct {
	// Scripts is the number of scripts to verify. Script i is generated from seed Seed+i.
	Scripts int

	// Steps is the number of steps in each script.
	Steps int

	// Workers is the number of scripts verified in parallel.
	Workers int

	// Seed is the seed of the first script.
	Seed int64
}

// DefaultConfig is the default configuration of the checker.
var DefaultConfig = Config{
	Scripts: 1000,
	Steps:   500,
	Workers: 5,
	Seed:    1,
}

// Validate validates the config.
func (c Config) Validate() error {
	if c.Scripts <= 0 {
		return errors.Errorf("number of scripts must be positive, got %d", c.Scripts)
	}
	if c.Steps <= 0 {
		return errors.Errorf("number of steps must be positive, got %d", c.Steps)
	}
	if c.Workers <= 0 {
		return errors.Errorf("number of workers must be positive, got %d", c.Workers)
	}
	return nil
}
