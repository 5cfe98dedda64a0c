package monitor

import (
	"time"

	"github.com/Sharon-codes/Wifi-Speed-Monitor/internal/models"
)

// DisconnectionTracker waits out connectivity outages. AwaitReconnection is
// the only unbounded blocking call in the system: an outage can last
// arbitrarily long and there is deliberately no timeout.
type DisconnectionTracker struct {
	probe    models.ConnectivityProbe
	interval time.Duration
	clock    models.Clock
}

// NewDisconnectionTracker creates a tracker that re-polls probe every
// interval while the connection is down.
func NewDisconnectionTracker(probe models.ConnectivityProbe, interval time.Duration, clock models.Clock) *DisconnectionTracker {
	return &DisconnectionTracker{probe: probe, interval: interval, clock: clock}
}

// AwaitReconnection blocks until the probe reports the network reachable
// again, then returns the completed outage. Probe errors during the wait
// count as still disconnected.
func (t *DisconnectionTracker) AwaitReconnection(lostAt time.Time) models.Disconnection {
	for !t.probe.IsReachable() {
		t.clock.Sleep(t.interval)
	}
	return models.NewDisconnection(lostAt, t.clock.Now())
}
