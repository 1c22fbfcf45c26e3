package deps

import (
	"reminderbot/internal/config"
	dl "reminderbot/internal/core/domain/logging"
	"reminderbot/internal/core/domain/reminder"
	duow "reminderbot/internal/core/domain/unit_of_work"
	"reminderbot/internal/core/domain/user"
	"reminderbot/internal/db"
	dbreminder "reminderbot/internal/db/reminder"
	uow "reminderbot/internal/db/unit_of_work"
	dbuser "reminderbot/internal/db/user"
	"reminderbot/internal/implementations/logging"
	"reminderbot/internal/implementations/notifier"
	"reminderbot/internal/persistence"
	"time"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger
	Store  *db.Store

	Now func() time.Time

	UnitOfWork         duow.UnitOfWork
	UserRepository     user.UserRepository
	ReminderRepository reminder.ReminderRepository

	Categories       reminder.CategorySet
	ReminderNotifier reminder.Notifier

	PersistenceManager *persistence.Manager
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	closeLogger := deps.initLogger()
	closeStore := deps.initStore()

	deps.Now = func() time.Time { return time.Now().UTC() }

	deps.UnitOfWork = uow.NewSQLiteUnitOfWork(deps.Store.DB())
	deps.UserRepository = dbuser.NewSQLiteUserRepository(deps.Store.DB())
	deps.ReminderRepository = dbreminder.NewSQLiteReminderRepository(deps.Store.DB())

	deps.Categories = reminder.NewCategorySet(deps.Config.ReminderCategories...)
	deps.initNotifier()

	deps.PersistenceManager = persistence.NewManager(
		deps.Store,
		deps.Logger,
		deps.Config.BackupDir,
		deps.Now,
	)

	return deps, func() {
		closeStore()
		closeLogger()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger(deps.Config.IsTestMode)
	deps.Logger = logger
	return func() {
		logger.Sync()
	}
}

func (deps *Deps) initStore() func() {
	store := db.NewStore(deps.Config.DatabasePath)
	if err := store.Connect(); err != nil {
		panic(err)
	}
	deps.Store = store
	return func() {
		store.Close()
	}
}

func (deps *Deps) initNotifier() {
	if deps.Config.IsTestMode {
		deps.ReminderNotifier = notifier.NewLog(deps.Logger)
		return
	}
	deps.ReminderNotifier = notifier.New(
		deps.Config.TelegramBaseURL,
		deps.Config.TelegramToken,
		deps.Config.TelegramRequestTimeout,
	)
}
