package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	c "reminderbot/internal/core/domain/common"
	e "reminderbot/internal/core/domain/errors"
	"reminderbot/internal/core/domain/logging"
	"reminderbot/internal/core/domain/reminder"
	"reminderbot/internal/core/domain/user"
	"reminderbot/internal/db"
	dbreminder "reminderbot/internal/db/reminder"
	dbuow "reminderbot/internal/db/unit_of_work"
	dbuser "reminderbot/internal/db/user"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const backupPrefix = "reminderbot_backup_"
const backupStampLayout = "20060102_150405"

var sqliteHeader = []byte("SQLite format 3\x00")

var ErrInvalidBackupFile = errors.New("not a valid SQLite database file")

// Manager performs maintenance operations on the store: file backups,
// restores and per-user JSON snapshots. Restore swaps the database file
// and must not run concurrently with other store access.
type Manager struct {
	store     *db.Store
	log       logging.Logger
	backupDir string
	now       func() time.Time
}

func NewManager(
	store *db.Store,
	log logging.Logger,
	backupDir string,
	now func() time.Time,
) *Manager {
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if backupDir == "" {
		panic("Argument backupDir must not be empty.")
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &Manager{
		store:     store,
		log:       log,
		backupDir: backupDir,
		now:       now,
	}
}

// Backup copies the database file into the backup directory and returns
// the backup path. The WAL is checkpointed first so the copy is complete.
func (m *Manager) Backup(ctx context.Context) (string, error) {
	if _, err := os.Stat(m.store.Path()); err != nil {
		return "", fmt.Errorf("stat database file: %w", err)
	}
	if _, err := m.store.DB().ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return "", fmt.Errorf("checkpoint database: %w", err)
	}
	if err := os.MkdirAll(m.backupDir, 0o755); err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}

	stamp := m.now().UTC().Format(backupStampLayout)
	backupPath := filepath.Join(m.backupDir, backupPrefix+stamp+".db")
	if err := copyFile(m.store.Path(), backupPath); err != nil {
		return "", fmt.Errorf("copy database file: %w", err)
	}

	m.log.Info(ctx, "Database backup created.", logging.Entry("path", backupPath))
	return backupPath, nil
}

// Restore replaces the database file with the given backup and reconnects.
// Pending migrations newer than the backup are applied on reconnect.
func (m *Manager) Restore(ctx context.Context, backupPath string) error {
	if err := validateSQLiteFile(backupPath); err != nil {
		return err
	}

	if err := m.store.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	for _, suffix := range []string{"-wal", "-shm"} {
		if err := os.Remove(m.store.Path() + suffix); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove journal file: %w", err)
		}
	}
	if err := copyFile(backupPath, m.store.Path()); err != nil {
		return fmt.Errorf("copy backup file: %w", err)
	}
	if err := m.store.Connect(); err != nil {
		return err
	}

	m.log.Info(ctx, "Database restored from backup.", logging.Entry("path", backupPath))
	return nil
}

// ListBackups returns backup file paths, newest first.
func (m *Manager) ListBackups() ([]string, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read backup directory: %w", err)
	}

	var backups []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, backupPrefix) || !strings.HasSuffix(name, ".db") {
			continue
		}
		backups = append(backups, filepath.Join(m.backupDir, name))
	}
	// The timestamp in the name sorts lexicographically.
	sort.Sort(sort.Reverse(sort.StringSlice(backups)))
	return backups, nil
}

// CleanupOldBackups removes all but the keep newest backups and returns
// the removed count.
func (m *Manager) CleanupOldBackups(ctx context.Context, keep uint) (uint, error) {
	backups, err := m.ListBackups()
	if err != nil {
		return 0, err
	}
	if uint(len(backups)) <= keep {
		return 0, nil
	}

	var removed uint
	for _, backupPath := range backups[keep:] {
		if err := os.Remove(backupPath); err != nil {
			return removed, fmt.Errorf("remove backup file: %w", err)
		}
		removed++
	}
	m.log.Info(
		ctx,
		"Old backups removed.",
		logging.Entry("removed", removed),
		logging.Entry("kept", keep),
	)
	return removed, nil
}

// ExportUser writes a JSON snapshot of the user's profile and reminders
// into the backup directory and returns the snapshot path.
func (m *Manager) ExportUser(ctx context.Context, userID user.ID) (string, error) {
	users := dbuser.NewSQLiteUserRepository(m.store.DB())
	u, err := users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	reminders := dbreminder.NewSQLiteReminderRepository(m.store.DB())
	rems, err := reminders.Read(ctx, reminder.ReadOptions{
		CreatedByEquals: c.NewOptional(userID, true),
		OrderBy:         reminder.OrderByIDAsc,
	})
	if err != nil {
		return "", err
	}

	snapshot := Snapshot{
		SnapshotID: uuid.NewString(),
		ExportedAt: m.now().UTC(),
	}
	snapshot.User.FromDomainType(u)
	snapshot.Reminders = make([]SnapshotReminder, len(rems))
	for ix, rem := range rems {
		snapshot.Reminders[ix].FromDomainType(rem)
	}

	raw, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(m.backupDir, 0o755); err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}
	stamp := m.now().UTC().Format(backupStampLayout)
	snapshotPath := filepath.Join(m.backupDir, fmt.Sprintf("user_%d_data_%s.json", userID, stamp))
	if err := os.WriteFile(snapshotPath, raw, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot file: %w", err)
	}

	m.log.Info(
		ctx,
		"User data exported.",
		logging.Entry("userId", userID),
		logging.Entry("path", snapshotPath),
		logging.Entry("reminderCount", len(rems)),
	)
	return snapshotPath, nil
}

type ImportResult struct {
	RemindersImported uint
}

// ImportUser loads a snapshot file and re-creates its contents for the given
// user in a single transaction. The whole snapshot is validated before
// anything is written, a corrupt file imports nothing.
func (m *Manager) ImportUser(
	ctx context.Context,
	snapshotPath string,
	userID user.ID,
) (result ImportResult, err error) {
	raw, err := os.ReadFile(snapshotPath)
	if err != nil {
		return result, fmt.Errorf("read snapshot file: %w", err)
	}
	var snapshot Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return result, fmt.Errorf("decode snapshot file: %w", err)
	}
	if err := snapshot.Validate(); err != nil {
		return result, fmt.Errorf("invalid snapshot: %w", err)
	}
	inputs := make([]reminder.CreateInput, len(snapshot.Reminders))
	for ix, rem := range snapshot.Reminders {
		inputs[ix], err = rem.ToCreateInput(userID)
		if err != nil {
			return result, fmt.Errorf("invalid snapshot: %w", err)
		}
	}

	uow, err := dbuow.NewSQLiteUnitOfWork(m.store.DB()).Begin(ctx)
	if err != nil {
		return result, err
	}
	defer uow.Rollback(ctx)

	_, err = uow.Users().Upsert(ctx, user.UpsertUserInput{
		ID:        userID,
		FirstName: snapshot.User.FirstName,
		LastName:  decodeOptionalString(snapshot.User.LastName),
		Username:  decodeOptionalString(snapshot.User.Username),
		CreatedAt: snapshot.User.CreatedAt,
	})
	if err != nil {
		return result, err
	}
	for _, input := range inputs {
		if _, err := uow.Reminders().Create(ctx, input); err != nil {
			return result, err
		}
	}
	if err := uow.Commit(ctx); err != nil {
		return result, err
	}

	m.log.Info(
		ctx,
		"User data imported.",
		logging.Entry("userId", userID),
		logging.Entry("path", snapshotPath),
		logging.Entry("reminderCount", len(inputs)),
	)
	return ImportResult{RemindersImported: uint(len(inputs))}, nil
}

func validateSQLiteFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open backup file: %w", err)
	}
	defer f.Close()

	header := make([]byte, len(sqliteHeader))
	if _, err := io.ReadFull(f, header); err != nil {
		return ErrInvalidBackupFile
	}
	for ix := range sqliteHeader {
		if header[ix] != sqliteHeader[ix] {
			return ErrInvalidBackupFile
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
