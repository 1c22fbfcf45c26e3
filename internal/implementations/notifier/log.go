package notifier

import (
	"context"
	e "reminderbot/internal/core/domain/errors"
	"reminderbot/internal/core/domain/logging"
	"reminderbot/internal/core/domain/reminder"
)

// LogNotifier only logs the notification. Used in test mode.
type LogNotifier struct {
	log logging.Logger
}

func NewLog(log logging.Logger) *LogNotifier {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, rem reminder.Reminder) error {
	n.log.Info(
		ctx,
		"Reminder notification.",
		logging.Entry("reminderId", rem.ID),
		logging.Entry("userId", rem.CreatedBy),
		logging.Entry("title", rem.Title),
	)
	return nil
}
