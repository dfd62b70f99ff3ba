package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/minutes/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/minutes/internal/core/domain"
	"github.com/custodia-labs/minutes/internal/core/ports/driven"
)

// Store is the SQLite-backed meeting history.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store in the specified data directory.
// If dataDir is empty, defaults to ~/.minutes/data/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".minutes", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// MeetingStore returns a MeetingStore interface backed by this store.
func (s *Store) MeetingStore() driven.MeetingStore {
	return &meetingStore{store: s}
}

// migrate runs all pending migrations and records each applied version.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_meetings.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if err := s.apply(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// apply runs one migration and records its version atomically.
func (s *Store) apply(version int, script string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(script); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		return err
	}
	return tx.Commit()
}

// ==================== Meeting Store ====================

// meetingStore implements driven.MeetingStore.
type meetingStore struct {
	store *Store
}

var _ driven.MeetingStore = (*meetingStore)(nil)

const meetingColumns = "id, summary, transcript, pdf_link, file_name, processed_at"

// Save stores or replaces a meeting. Replacing moves it to the newest rowid,
// so of two meetings with equal timestamps the last saved sorts first.
func (s *meetingStore) Save(ctx context.Context, meeting domain.Meeting) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO meetings (`+meetingColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		meeting.ID.String(),
		meeting.Summary,
		meeting.Transcript,
		meeting.PDFLink,
		meeting.FileName,
		meeting.ProcessedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("saving meeting: %w", err)
	}
	return nil
}

// Get retrieves a meeting by ID.
func (s *meetingStore) Get(ctx context.Context, id domain.MeetingID) (*domain.Meeting, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT "+meetingColumns+" FROM meetings WHERE id = ?", id.String())
	return scanMeeting(row)
}

// Latest returns the most recently processed meeting.
func (s *meetingStore) Latest(ctx context.Context) (*domain.Meeting, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT "+meetingColumns+" FROM meetings ORDER BY processed_at DESC, rowid DESC LIMIT 1")
	return scanMeeting(row)
}

// List returns up to limit meetings, newest first.
func (s *meetingStore) List(ctx context.Context, limit int) ([]domain.Meeting, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.store.db.QueryContext(ctx,
		"SELECT "+meetingColumns+" FROM meetings ORDER BY processed_at DESC, rowid DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("listing meetings: %w", err)
	}
	defer rows.Close()

	meetings := []domain.Meeting{}
	for rows.Next() {
		meeting, err := scanMeeting(rows)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, *meeting)
	}
	return meetings, rows.Err()
}

// Delete removes a meeting.
func (s *meetingStore) Delete(ctx context.Context, id domain.MeetingID) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM meetings WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("deleting meeting: %w", err)
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeeting(row rowScanner) (*domain.Meeting, error) {
	var (
		meeting     domain.Meeting
		id          string
		processedAt int64
	)
	err := row.Scan(
		&id,
		&meeting.Summary,
		&meeting.Transcript,
		&meeting.PDFLink,
		&meeting.FileName,
		&processedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning meeting: %w", err)
	}

	meeting.ID = domain.MeetingID(id)
	meeting.ProcessedAt = time.Unix(0, processedAt).UTC()
	return &meeting, nil
}
