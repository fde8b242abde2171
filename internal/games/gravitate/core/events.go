package core

import "time"

// Event is a notification from the engine to its host. The host drains
// pending events with Game.Events after each call into the engine.
type Event interface {
	isEvent()
}

// ScoreChangedEvent carries the new running score.
type ScoreChangedEvent struct {
	Score uint64
}

// RedrawEvent signals that the board changed visibly.
type RedrawEvent struct{}

// PhaseRequestEvent asks the host to call Game.Tick(Phase) after Delay.
type PhaseRequestEvent struct {
	Phase Phase
	Delay time.Duration
}

// GameOverEvent is emitted when no legal move remains.
type GameOverEvent struct {
	Score uint64
}

// WonEvent is emitted when the board has been cleared.
type WonEvent struct {
	Score        uint64
	NewHighScore bool
}

func (ScoreChangedEvent) isEvent() {}
func (RedrawEvent) isEvent()       {}
func (PhaseRequestEvent) isEvent() {}
func (GameOverEvent) isEvent()     {}
func (WonEvent) isEvent()          {}
