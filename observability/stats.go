package observability

import "sync/atomic"

// Snapshot is a point-in-time copy of the counters, safe to log or assert on.
type Snapshot struct {
	RegistrationsSeen uint64 `json:"registrations_seen"`
	AlertsSent        uint64 `json:"alerts_sent"`
	AlertsFailed      uint64 `json:"alerts_failed"`
	JoinsOK           uint64 `json:"joins_ok"`
	JoinsFailed       uint64 `json:"joins_failed"`
	SuspensionsOK     uint64 `json:"suspensions_ok"`
	SuspensionsFailed uint64 `json:"suspensions_failed"`
	ConfirmationsSent uint64 `json:"confirmations_sent"`
}

// Stats aggregates action outcomes across concurrent event handlers.
// Counters are atomic; this is the only state shared between handlers.
type Stats struct {
	registrationsSeen atomic.Uint64
	alertsSent        atomic.Uint64
	alertsFailed      atomic.Uint64
	joinsOK           atomic.Uint64
	joinsFailed       atomic.Uint64
	suspensionsOK     atomic.Uint64
	suspensionsFailed atomic.Uint64
	confirmationsSent atomic.Uint64
}

func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) RegistrationSeen() { s.registrationsSeen.Add(1) }

func (s *Stats) AlertSent(ok bool) {
	if ok {
		s.alertsSent.Add(1)
		return
	}
	s.alertsFailed.Add(1)
}

func (s *Stats) JoinDone(ok bool) {
	if ok {
		s.joinsOK.Add(1)
		return
	}
	s.joinsFailed.Add(1)
}

func (s *Stats) SuspensionDone(ok bool) {
	if ok {
		s.suspensionsOK.Add(1)
		return
	}
	s.suspensionsFailed.Add(1)
}

func (s *Stats) ConfirmationSent() { s.confirmationsSent.Add(1) }

func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		RegistrationsSeen: s.registrationsSeen.Load(),
		AlertsSent:        s.alertsSent.Load(),
		AlertsFailed:      s.alertsFailed.Load(),
		JoinsOK:           s.joinsOK.Load(),
		JoinsFailed:       s.joinsFailed.Load(),
		SuspensionsOK:     s.suspensionsOK.Load(),
		SuspensionsFailed: s.suspensionsFailed.Load(),
		ConfirmationsSent: s.confirmationsSent.Load(),
	}
}
