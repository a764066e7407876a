package viewmodel

// EventKind discriminates one-shot events emitted by view-models.
type EventKind int

const (
	// EventLogout tells the UI to drop to the login screen. Emitted at
	// most once per view-model.
	EventLogout EventKind = iota

	// EventToast carries a transient message for the user.
	EventToast
)

func (k EventKind) String() string {
	switch k {
	case EventLogout:
		return "logout"
	case EventToast:
		return "toast"
	default:
		return "unknown"
	}
}

// Event is a one-shot signal, consumed exactly once, unlike observable
// state which replays its latest value.
type Event struct {
	Kind    EventKind
	Message string
}
