package reminder

import "context"

// Notifier delivers a due reminder to its owner. Delivery is handled
// by the chat front-end, the domain only sees this interface.
type Notifier interface {
	Notify(ctx context.Context, rem Reminder) error
}
