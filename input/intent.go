// Package input turns terminal events into commands and executes them
// against the app.
package input

import "github.com/lixenwraith/regroup/control"

// IntentType discriminates parsed input
type IntentType uint8

const (
	IntentNone    IntentType = iota
	IntentCommand            // key or click bound to a command
	IntentResize             // terminal resize
	IntentQuit               // Ctrl+C or closed input
)

// Intent is the parser output consumed by the Router
type Intent struct {
	Type    IntentType
	Command control.Command
	Source  Source
}

// Source records how an intent was produced, for logging
type Source uint8

const (
	SourceKey Source = iota
	SourceMouse
	SourceSystem
)

func (s Source) String() string {
	switch s {
	case SourceMouse:
		return "mouse"
	case SourceSystem:
		return "system"
	default:
		return "key"
	}
}
