package reminder

import (
	"errors"
	"time"
)

var ErrParsePostponement = errors.New("invalid postponement")

// ParsePostponement maps the front-end's postpone presets
// to a duration the due time is shifted by.
func ParsePostponement(value string) (time.Duration, error) {
	switch value {
	case "1h":
		return time.Hour, nil
	case "3h":
		return 3 * time.Hour, nil
	case "1d":
		return 24 * time.Hour, nil
	case "1w":
		return 7 * 24 * time.Hour, nil
	default:
		return 0, ErrParsePostponement
	}
}
