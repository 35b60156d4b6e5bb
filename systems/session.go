package systems

import (
	"fmt"
	"math"

	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/hypermaze/components"
	cfg "github.com/automoto/hypermaze/config"
)

// SessionCommand is what the scene should do after this frame.
type SessionCommand int

const (
	SessionContinue SessionCommand = iota
	SessionRestart
	SessionExit
)

var sessionCommand SessionCommand

// UpdateSession runs the stopwatch while playing and, once the run has
// ended, watches for the restart / exit keys.
func UpdateSession(e *ecs.ECS) {
	sessionCommand = SessionContinue
	session := currentSession(e)
	if session == nil {
		return
	}

	input := getOrCreateInput(e)
	switch session.State {
	case components.StatePlaying:
		session.Elapsed += DT()
		if input.JustPressed(cfg.ActionBack) {
			sessionCommand = SessionExit
		}
	default:
		if input.JustPressed(cfg.ActionConfirm) {
			sessionCommand = SessionRestart
		}
		if input.JustPressed(cfg.ActionBack) {
			sessionCommand = SessionExit
		}
	}
}

// Command reports the scene transition requested this frame.
func Command() SessionCommand { return sessionCommand }

// FormatClock renders seconds as the stopwatch shows them, m:ss.t. Rounding
// to tenths happens before the minute split so 59.97 reads 1:00.0, never
// 0:60.0.
func FormatClock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	tenths := int(math.Round(seconds * 10))
	m := tenths / 600
	rem := tenths % 600
	return fmt.Sprintf("%d:%02d.%d", m, rem/10, rem%10)
}
