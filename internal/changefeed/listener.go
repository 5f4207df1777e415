// Package changefeed delivers committed-change notifications keyed by profile
// id to observers such as UI refresh loops.
//
// Notifications ride the same commits that change jar state, so a received
// profile id means a subsequent read observes the new state. The feed is a
// convenience for observers; the ledger engine never consults it for
// correctness.
package changefeed

import (
	"context"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/threejars/ledger/internal/ledgerrepo"
)

// Listener wraps a pq listener on the jar changes channel.
type Listener struct {
	pq     *pq.Listener
	logger zerolog.Logger
}

// New returns a Listener connected to the given database.
func New(dbSource string, logger zerolog.Logger) (*Listener, error) {
	reportProblem := func(ev pq.ListenerEventType, err error) {
		if err != nil {
			logger.Error().Err(err).Int("event", int(ev)).Msg("changefeed listener problem")
		}
	}

	listener := pq.NewListener(dbSource, 10*time.Second, time.Minute, reportProblem)
	if err := listener.Listen(ledgerrepo.NotifyChannel); err != nil {
		return nil, err
	}

	return &Listener{pq: listener, logger: logger}, nil
}

// Run forwards profile ids of committed changes to the callback until ctx is
// cancelled. The periodic ping keeps the connection alive across idle spells.
func (l *Listener) Run(ctx context.Context, callback func(profileID string)) error {
	for {
		select {
		case <-ctx.Done():
			return l.pq.Close()
		case n := <-l.pq.Notify:
			if n == nil {
				// Connection was re-established; observers should re-query.
				continue
			}

			callback(n.Extra)
		case <-time.After(90 * time.Second):
			if err := l.pq.Ping(); err != nil {
				l.logger.Error().Err(err).Msg("changefeed ping failed")
			}
		}
	}
}
