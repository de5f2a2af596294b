package embedhost

// InstallState is the host-reported install status of one item.
type InstallState int

const (
	// StateUnknown renders a neutral, disabled control. Without a host
	// report the item stays unknown indefinitely.
	StateUnknown InstallState = iota
	StateNotInstalled
	StateInstalled
)

// String returns the state name for display and tests.
func (s InstallState) String() string {
	switch s {
	case StateInstalled:
		return "installed"
	case StateNotInstalled:
		return "not-installed"
	default:
		return "unknown"
	}
}

// Tracker is the per-item install button state machine:
//
//	unknown -> not-installed <-> installed
//
// Transitions out of unknown come only from a host report. Clicks
// transition optimistically, without waiting for confirmation.
type Tracker struct {
	itemID   string
	itemType string
	state    InstallState
}

// NewTracker creates a tracker for the item shown in a detail view.
func NewTracker(itemID, itemType string) *Tracker {
	return &Tracker{itemID: itemID, itemType: itemType, state: StateUnknown}
}

// State returns the current state.
func (t *Tracker) State() InstallState {
	return t.state
}

// CheckMessage returns the check-installed request sent on mount.
func (t *Tracker) CheckMessage() (Envelope, error) {
	return NewEnvelope(TypeCheckInstalled, CheckInstalledPayload{
		ID:   t.itemID,
		Type: t.itemType,
	})
}

// Apply consumes a host install report. Reports for other items are
// ignored; only the currently displayed item may change state.
func (t *Tracker) Apply(p InstalledPayload) {
	if p.ID != t.itemID {
		return
	}

	if p.Installed {
		t.state = StateInstalled
	} else {
		t.state = StateNotInstalled
	}
}

// Toggle performs the optimistic click transition and returns the
// notification to send. Clicking while unknown is a no-op: the control
// renders disabled until a report arrives.
func (t *Tracker) Toggle(payload InstallPayload) (Envelope, bool) {
	switch t.state {
	case StateNotInstalled:
		t.state = StateInstalled
		env, err := NewEnvelope(TypeInstall, payload)
		return env, err == nil
	case StateInstalled:
		t.state = StateNotInstalled
		env, err := NewEnvelope(TypeUninstall, payload)
		return env, err == nil
	default:
		return Envelope{}, false
	}
}
