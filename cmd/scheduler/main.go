package main

import (
	"context"
	"os"
	"os/signal"
	"reminderbot/internal/app/deps"
	"reminderbot/internal/app/services"
	"reminderbot/internal/scheduler"
	"syscall"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	defer shutdownDeps()

	services := services.InitServices(deps)

	worker := scheduler.NewWorker(
		deps.Logger,
		services.NotifyDueReminders,
		deps.Config.SchedulerPollInterval,
		deps.Config.SchedulerTickTimeout,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker.Run(ctx)
}
