package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"GradeBook/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists grade events and session summaries to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS grade_events (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			event_id    TEXT NOT NULL UNIQUE,
			timestamp   INTEGER NOT NULL,
			book        TEXT NOT NULL,
			grade       REAL NOT NULL,
			grade_count INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_grade_events_book ON grade_events(book, timestamp)`,

		`CREATE TABLE IF NOT EXISTS session_summaries (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			book        TEXT NOT NULL,
			category    TEXT,
			grade_count INTEGER,
			high        REAL,
			low         REAL,
			average     REAL,
			letter      TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_session_summaries_book ON session_summaries(book, timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordGrade(evt *model.GradeAddedEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	at := evt.At
	if at.IsZero() {
		at = time.Now()
	}
	_, err := r.db.Exec(`INSERT INTO grade_events
		(event_id, timestamp, book, grade, grade_count)
		VALUES (?,?,?,?,?)`,
		evt.ID, at.Unix(), evt.Book, evt.Grade, evt.Count,
	)
	if err != nil {
		return fmt.Errorf("record grade: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) RecordSummary(sum *SessionSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ended := sum.EndedAt
	if ended.IsZero() {
		ended = time.Now()
	}

	// Empty sessions keep NULL statistics rather than zeros.
	var high, low, avg, letter any
	if !sum.Empty {
		high, low, avg, letter = sum.Stats.High, sum.Stats.Low, sum.Stats.Average, string(sum.Stats.Letter)
	}
	_, err := r.db.Exec(`INSERT INTO session_summaries
		(timestamp, book, category, grade_count, high, low, average, letter)
		VALUES (?,?,?,?,?,?,?,?)`,
		ended.Unix(), sum.Book, sum.Category, sum.Stats.Count,
		high, low, avg, letter,
	)
	if err != nil {
		return fmt.Errorf("record summary: %w", err)
	}
	return nil
}

// Grades returns the grades recorded for a book, oldest first.
func (r *SQLiteRecorder) Grades(bookName string) ([]float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT grade FROM grade_events WHERE book = ? ORDER BY id`, bookName)
	if err != nil {
		return nil, fmt.Errorf("query grades: %w", err)
	}
	defer rows.Close()

	var grades []float64
	for rows.Next() {
		var g float64
		if err := rows.Scan(&g); err != nil {
			return nil, fmt.Errorf("scan grade: %w", err)
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}

// SummaryCount returns how many session summaries exist for a book.
func (r *SQLiteRecorder) SummaryCount(bookName string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM session_summaries WHERE book = ?`, bookName).Scan(&n); err != nil {
		return 0, fmt.Errorf("count summaries: %w", err)
	}
	return n, nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
