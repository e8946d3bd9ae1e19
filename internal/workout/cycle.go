package workout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidMode = errors.New("mode must be 4 or 5")

// Mode is the number of sessions per week.
type Mode int

const (
	Mode4 Mode = 4
	Mode5 Mode = 5
)

var cycles = map[Mode][]string{
	Mode4: {"S1", "S2", "S3", "S4"},
	Mode5: {"S1", "S2", "S3", "S4", "S5"},
}

func (m Mode) Valid() bool {
	_, ok := cycles[m]
	return ok
}

// ParseMode reads a mode from a query or body value, empty falls back to def.
func ParseMode(raw string, def Mode) (Mode, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || !Mode(n).Valid() {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidMode, raw)
	}
	return Mode(n), nil
}

// NextSession returns the session after lastSessionID in the fixed rotation.
// No previous session, or one that is not part of this mode's cycle, starts over at S1.
func NextSession(lastSessionID string, mode Mode) string {
	cycle, ok := cycles[mode]
	if !ok {
		cycle = cycles[Mode4]
	}
	if lastSessionID == "" {
		return cycle[0]
	}
	for i, id := range cycle {
		if id == lastSessionID {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}
