package api

// State is the lifecycle of an Application. It only moves forward:
// Created -> Listening -> Terminating -> Stopped.
type State int32

const (
	StateCreated State = iota
	StateListening
	StateTerminating
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateListening:
		return "listening"
	case StateTerminating:
		return "terminating"
	case StateStopped:
		return "stopped"
	}

	return "unknown"
}
