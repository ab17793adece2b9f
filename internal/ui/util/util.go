// Package util provides helpers for UI message plumbing.
package util

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
)

// CmdHandler wraps a message in a command.
func CmdHandler(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

// ReportError logs an error and returns a command carrying it to the
// status bar.
func ReportError(err error) tea.Cmd {
	slog.Error("reporting error", "error", err)
	return CmdHandler(NewErrorMsg(err))
}

// InfoType is the severity of an [InfoMsg].
type InfoType int

const (
	InfoTypeInfo InfoType = iota
	InfoTypeWarn
	InfoTypeError
)

// NewInfoMsg returns an informational [InfoMsg].
func NewInfoMsg(info string) InfoMsg {
	return InfoMsg{
		Type: InfoTypeInfo,
		Msg:  info,
	}
}

// NewWarnMsg returns a warning [InfoMsg].
func NewWarnMsg(warn string) InfoMsg {
	return InfoMsg{
		Type: InfoTypeWarn,
		Msg:  warn,
	}
}

// NewErrorMsg returns an error [InfoMsg].
func NewErrorMsg(err error) InfoMsg {
	return InfoMsg{
		Type: InfoTypeError,
		Msg:  err.Error(),
	}
}

// ReportInfo returns a command carrying an informational message to the
// status bar.
func ReportInfo(info string) tea.Cmd {
	return CmdHandler(NewInfoMsg(info))
}

// ReportWarn returns a command carrying a warning to the status bar.
func ReportWarn(warn string) tea.Cmd {
	return CmdHandler(NewWarnMsg(warn))
}

type (
	// InfoMsg is a message shown in the status bar for a limited time.
	InfoMsg struct {
		Type InfoType
		Msg  string
		TTL  time.Duration
	}
	// ClearStatusMsg clears the status bar.
	ClearStatusMsg struct{}
)

// IsEmpty reports whether the [InfoMsg] is the zero value.
func (m InfoMsg) IsEmpty() bool {
	var zero InfoMsg
	return m == zero
}
