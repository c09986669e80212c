package session

// Action is an edge-triggered command, fired once per key press
type Action int

const (
	ActionDifficulty1 Action = iota
	ActionDifficulty2
	ActionDifficulty3
	ActionTrackEasy
	ActionTrackMedium
	ActionTrackHard
	ActionStart
	ActionPause
	ActionContinue
	ActionRestart
	ActionMenu
)

// Input is what the player did during one frame.
// Throttle, Left and Right are level-triggered (key held).
type Input struct {
	Throttle bool
	Left     bool
	Right    bool
	Actions  []Action
}

// Has reports whether a was pressed this frame
func (in Input) Has(a Action) bool {
	for _, x := range in.Actions {
		if x == a {
			return true
		}
	}
	return false
}

// Press returns a copy of in with the given actions added
func (in Input) Press(actions ...Action) Input {
	in.Actions = append(append([]Action(nil), in.Actions...), actions...)
	return in
}
