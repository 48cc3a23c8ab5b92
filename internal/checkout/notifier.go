package checkout

import (
	"sync"

	"go.uber.org/zap"
)

// Notifier receives the transient, user-facing messages the orchestrator
// emits when a remote call fails or an order is created. Failures never
// propagate past the session; the notifier is how the user learns about them.
type Notifier interface {
	Notify(message string)
}

// BufferedNotifier records messages so the API can return them to the client
// on the next poll, and mirrors them to the log.
type BufferedNotifier struct {
	mu       sync.Mutex
	messages []string
	logger   *zap.Logger
}

func NewBufferedNotifier(logger *zap.Logger) *BufferedNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BufferedNotifier{logger: logger}
}

func (n *BufferedNotifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
	n.logger.Info("Checkout notification", zap.String("message", message))
}

// Drain returns the pending messages and clears the buffer
func (n *BufferedNotifier) Drain() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := n.messages
	n.messages = nil
	return out
}
