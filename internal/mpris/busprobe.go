package mpris

import (
	"strings"

	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"
)

// BusProbe answers whether a named service currently owns a session-bus
// name. It is the last step of the liveness cascade: even when process and
// window checks come up empty, a player that registered on the bus is alive.
type BusProbe interface {
	HasName(name string) bool
}

type sessionBusProbe struct {
	logger zerolog.Logger
}

// NewBusProbe creates a probe backed by the shared session-bus connection.
func NewBusProbe(logger zerolog.Logger) BusProbe {
	return &sessionBusProbe{
		logger: logger.With().Str("component", "busprobe").Logger(),
	}
}

func (p *sessionBusProbe) HasName(name string) bool {
	conn, err := dbus.SessionBus()
	if err != nil {
		p.logger.Debug().Err(err).Msg("Session bus unavailable")
		return false
	}

	var names []string
	if err := conn.BusObject().Call("org.freedesktop.DBus.ListNames", 0).Store(&names); err != nil {
		p.logger.Debug().Err(err).Msg("ListNames failed")
		return false
	}

	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
