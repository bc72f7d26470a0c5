package notify

import (
	"context"
	"log/slog"
)

// Notifier delivers non-fatal, user-visible notices. The real messaging
// surface lives in the wider HR platform; this is the narrow seam to it.
type Notifier interface {
	Notice(ctx context.Context, message string)
}

type logNotifier struct{}

// NewLog returns a Notifier that writes notices to the structured log.
func NewLog() Notifier {
	return logNotifier{}
}

func (logNotifier) Notice(ctx context.Context, message string) {
	slog.InfoContext(ctx, "User notice", "message", message)
}
