/*
Process wide debug/release switch for the math library. Debug mode turns on
sanity warnings, release mode turns them off. Nothing else depends on it.
*/

package mode

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

type Mode int32

const (
	Debug   Mode = 100
	Release Mode = 101
)

var ErrUnknownMode = errors.New("unknown mode")

func (m Mode) String() string {
	switch m {
	case Debug:
		return "debug"
	case Release:
		return "release"
	}
	return fmt.Sprintf("Mode(%d)", int32(m))
}

// Parse accepts "debug" or "release", in any case.
func Parse(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug, nil
	case "release":
		return Release, nil
	}
	return Debug, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Registry holds a mode. The zero value is in Debug mode and is safe for
// concurrent use.
type Registry struct {
	release atomic.Bool
}

// Set switches to m. Anything other than Debug or Release is logged and
// replaced by Debug.
func (r *Registry) Set(m Mode) {
	switch m {
	case Debug:
		r.release.Store(false)
	case Release:
		r.release.Store(true)
	default:
		log.Warn().Int32("mode", int32(m)).Msg("unknown mode, defaulting to debug")
		r.release.Store(false)
	}
}

func (r *Registry) IsDebug() bool {
	return !r.release.Load()
}

func (r *Registry) Mode() Mode {
	if r.release.Load() {
		return Release
	}
	return Debug
}

// Default is the registry consulted by the vec package.
var Default = &Registry{}

func Set(m Mode) {
	Default.Set(m)
}

func IsDebug() bool {
	return Default.IsDebug()
}

func Current() Mode {
	return Default.Mode()
}
