package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

type WorldConfig struct {
	// DefaultRoom is where new characters (and characters whose last room
	// no longer exists) are placed.
	DefaultRoom string `json:"default_room"`

	// MetabolismInterval is how often needs advance at a metabolism rate
	// of 1.0. Empty means the engine default.
	MetabolismInterval string `json:"metabolism_interval"`

	// WrapWidth is the column to word-wrap outgoing text at. Zero means
	// the display default.
	WrapWidth int `json:"wrap_width"`
}

func (c *WorldConfig) validate() error {
	el := errors.NewErrorList()

	if c.DefaultRoom == "" {
		el.Add(fmt.Errorf("default_room is required"))
	}
	if c.MetabolismInterval != "" {
		_, err := time.ParseDuration(c.MetabolismInterval)
		if err != nil {
			el.Add(fmt.Errorf("parsing metabolism_interval: %w", err))
		}
	}
	if c.WrapWidth < 0 {
		el.Add(fmt.Errorf("wrap_width must not be negative"))
	}

	return el.Err()
}

func (c *WorldConfig) metabolismInterval() (time.Duration, error) {
	if c.MetabolismInterval == "" {
		return 0, nil
	}
	return time.ParseDuration(c.MetabolismInterval)
}
