package model

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

var lastMouseEvent time.Time

// MouseEventFilter rate-limits mouse wheel and motion events. Trackpads
// emit them far faster than the UI can usefully redraw.
func MouseEventFilter(m tea.Model, msg tea.Msg) tea.Msg {
	switch msg.(type) {
	case tea.MouseWheelMsg, tea.MouseMotionMsg:
		now := time.Now()
		if now.Sub(lastMouseEvent) < 15*time.Millisecond {
			return nil
		}
		lastMouseEvent = now
	}
	return msg
}
