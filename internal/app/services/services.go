package services

import (
	"reminderbot/internal/app/deps"
	"reminderbot/internal/core/services"
	completereminder "reminderbot/internal/core/services/complete_reminder"
	createreminder "reminderbot/internal/core/services/create_reminder"
	deletereminder "reminderbot/internal/core/services/delete_reminder"
	getreminder "reminderbot/internal/core/services/get_reminder"
	listreminders "reminderbot/internal/core/services/list_reminders"
	notifyduereminders "reminderbot/internal/core/services/notify_due_reminders"
	postponereminder "reminderbot/internal/core/services/postpone_reminder"
	registeruser "reminderbot/internal/core/services/register_user"
	updatereminder "reminderbot/internal/core/services/update_reminder"
	wipeuserdata "reminderbot/internal/core/services/wipe_user_data"
)

type Services struct {
	RegisterUser services.Service[registeruser.Input, registeruser.Result]
	WipeUserData services.Service[wipeuserdata.Input, wipeuserdata.Result]

	CreateReminder   services.Service[createreminder.Input, createreminder.Result]
	GetReminder      services.Service[getreminder.Input, getreminder.Result]
	ListReminders    services.Service[listreminders.Input, listreminders.Result]
	UpdateReminder   services.Service[updatereminder.Input, updatereminder.Result]
	PostponeReminder services.Service[postponereminder.Input, postponereminder.Result]
	CompleteReminder services.Service[completereminder.Input, completereminder.Result]
	DeleteReminder   services.Service[deletereminder.Input, deletereminder.Result]

	NotifyDueReminders services.Service[notifyduereminders.Input, notifyduereminders.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.RegisterUser = registeruser.New(
		deps.Logger,
		deps.UserRepository,
		deps.Now,
	)
	s.WipeUserData = wipeuserdata.New(
		deps.Logger,
		deps.UnitOfWork,
	)

	s.CreateReminder = createreminder.New(
		deps.Logger,
		deps.ReminderRepository,
		deps.Categories,
		deps.Now,
	)
	s.GetReminder = getreminder.New(
		deps.Logger,
		deps.ReminderRepository,
	)
	s.ListReminders = listreminders.New(
		deps.Logger,
		deps.ReminderRepository,
	)
	s.UpdateReminder = updatereminder.New(
		deps.Logger,
		deps.ReminderRepository,
		deps.Categories,
	)
	s.PostponeReminder = postponereminder.New(
		deps.Logger,
		deps.ReminderRepository,
	)
	s.CompleteReminder = completereminder.New(
		deps.Logger,
		deps.ReminderRepository,
	)
	s.DeleteReminder = deletereminder.New(
		deps.Logger,
		deps.ReminderRepository,
	)

	s.NotifyDueReminders = notifyduereminders.New(
		deps.Logger,
		deps.ReminderRepository,
		deps.ReminderNotifier,
		deps.Now,
	)

	return s
}
