package race

import (
	"errors"
	"fmt"
)

var ErrInvalidTransition = errors.New("invalid race state transition")

// State is the active phase of the game. Exactly one is active at a time.
type State int

const (
	StateMenu State = iota
	StateCountdown
	StateRacing
	StatePaused
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateCountdown:
		return "countdown"
	case StateRacing:
		return "racing"
	case StatePaused:
		return "paused"
	case StateFinished:
		return "finished"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Event drives state transitions
type Event int

const (
	EventStart Event = iota
	EventCountdownDone
	EventPause
	EventResume
	EventFinish
	EventRestart
	EventToMenu
)

func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventCountdownDone:
		return "countdown-done"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventFinish:
		return "finish"
	case EventRestart:
		return "restart"
	case EventToMenu:
		return "to-menu"
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

type transition struct {
	from State
	ev   Event
}

// Paused and Finished can only be entered from Racing.
var transitions = map[transition]State{
	{StateMenu, EventStart}:              StateCountdown,
	{StateCountdown, EventCountdownDone}: StateRacing,
	{StateRacing, EventPause}:            StatePaused,
	{StateRacing, EventFinish}:           StateFinished,
	{StatePaused, EventResume}:           StateRacing,
	{StatePaused, EventToMenu}:           StateMenu,
	{StateFinished, EventRestart}:        StateCountdown,
	{StateFinished, EventToMenu}:         StateMenu,
}

// Next returns the state reached from s on ev
func Next(s State, ev Event) (State, error) {
	to, ok := transitions[transition{s, ev}]
	if !ok {
		return s, fmt.Errorf("%w: %v on %v", ErrInvalidTransition, ev, s)
	}
	return to, nil
}
