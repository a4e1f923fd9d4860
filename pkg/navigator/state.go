package navigator

type Phase int

const (
	PhaseAwaitingVolume Phase = iota
	PhaseInFolder
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingVolume:
		return "awaiting_volume"
	case PhaseInFolder:
		return "in_folder"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// State is where the user is. One value exists per browsing session.
// Path is only set after it has been listed successfully.
type State struct {
	Path      string
	Root      string
	Phase     Phase
	Terminate bool
}

func NewState() *State {
	return &State{Phase: PhaseAwaitingVolume}
}

func (s *State) AtVolumeRoot() bool {
	return s.Phase == PhaseInFolder && s.Path == s.Root
}

func (s *State) awaitVolume() {
	s.Phase = PhaseAwaitingVolume
	s.Path, s.Root = "", ""
}

func (s *State) terminate() {
	s.Phase = PhaseTerminated
	s.Terminate = true
}

func (s *State) commit(path string) {
	s.Path = path
	s.Phase = PhaseInFolder
}
