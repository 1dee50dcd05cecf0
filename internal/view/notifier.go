package view

import "log/slog"

// Notifier surfaces transient outcome messages to the user, the role the
// toast system played in the browser client.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NopNotifier discards all messages.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}

// LogNotifier writes notifications to the structured log.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Success(msg string) {
	if n.Logger != nil {
		n.Logger.Info("notification", slog.String("kind", "success"), slog.String("message", msg))
	}
}

func (n LogNotifier) Error(msg string) {
	if n.Logger != nil {
		n.Logger.Warn("notification", slog.String("kind", "error"), slog.String("message", msg))
	}
}
