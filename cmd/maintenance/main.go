package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"reminderbot/internal/app/deps"
	"reminderbot/internal/core/domain/user"
)

const usage = `Usage: maintenance <command> [flags]

Commands:
  backup                       create a database backup
  restore -file <path>         replace the database with a backup
  list-backups                 list backups, newest first
  cleanup                      remove all but the newest backups
  export -user <id>            export a user's data to a JSON snapshot
  import -file <path> -user <id>  import a JSON snapshot for a user
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	deps, shutdownDeps := deps.InitDeps()
	defer shutdownDeps()

	ctx := context.Background()
	manager := deps.PersistenceManager

	switch os.Args[1] {
	case "backup":
		path, err := manager.Backup(ctx)
		exitOnError(err)
		fmt.Println(path)

	case "restore":
		flags := flag.NewFlagSet("restore", flag.ExitOnError)
		file := flags.String("file", "", "backup file path")
		flags.Parse(os.Args[2:])
		if *file == "" {
			exitOnError(fmt.Errorf("-file is required"))
		}
		exitOnError(manager.Restore(ctx, *file))
		fmt.Println("Database restored.")

	case "list-backups":
		backups, err := manager.ListBackups()
		exitOnError(err)
		for _, backup := range backups {
			fmt.Println(backup)
		}

	case "cleanup":
		removed, err := manager.CleanupOldBackups(ctx, deps.Config.MaxBackupCount)
		exitOnError(err)
		fmt.Printf("Removed %d backups, kept at most %d.\n", removed, deps.Config.MaxBackupCount)

	case "export":
		flags := flag.NewFlagSet("export", flag.ExitOnError)
		userID := flags.Int64("user", 0, "user ID")
		flags.Parse(os.Args[2:])
		if *userID == 0 {
			exitOnError(fmt.Errorf("-user is required"))
		}
		path, err := manager.ExportUser(ctx, user.ID(*userID))
		exitOnError(err)
		fmt.Println(path)

	case "import":
		flags := flag.NewFlagSet("import", flag.ExitOnError)
		file := flags.String("file", "", "snapshot file path")
		userID := flags.Int64("user", 0, "user ID")
		flags.Parse(os.Args[2:])
		if *file == "" || *userID == 0 {
			exitOnError(fmt.Errorf("-file and -user are required"))
		}
		result, err := manager.ImportUser(ctx, *file, user.ID(*userID))
		exitOnError(err)
		fmt.Printf("Imported %d reminders.\n", result.RemindersImported)

	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
