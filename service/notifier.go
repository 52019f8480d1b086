package service

import (
	"context"

	"go.uber.org/zap"
)

// ToastKind is the severity of a user-facing notification
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// Toast is a short message shown to a user after a basket or configurator action
type Toast struct {
	Kind    ToastKind
	UserID  string
	Title   string
	Message string
}

// Notifier delivers toasts. Delivery is fire-and-forget: it never fails the action it reports on.
type Notifier interface {
	Notify(ctx context.Context, toast Toast)
}

// LogNotifier writes toasts to the service log
type LogNotifier struct{}

// NewLogNotifier creates a new LogNotifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify logs the toast with a glyph matching its kind
func (n *LogNotifier) Notify(ctx context.Context, toast Toast) {
	if toast.Kind == ToastError {
		zap.S().Warnf("❌ Toast for %s: %s - %s", toast.UserID, toast.Title, toast.Message)
		return
	}
	zap.S().Infof("✅ Toast for %s: %s - %s", toast.UserID, toast.Title, toast.Message)
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, Toast) {}
