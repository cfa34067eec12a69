package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/expense-cli/expense/internal/expense"
	_ "modernc.org/sqlite"
)

// Index is an ephemeral SQLite query layer over the expense collection.
// It is rebuilt from the JSON file whenever the file's hash changes.
type Index struct {
	db *sql.DB
}

// CategoryTotal aggregates the expenses of one category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Total    float64 `json:"total"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// selectExpenseFields contains the field list for SELECT queries, in Expense field order.
const selectExpenseFields = `id, category, price, description, date`

// OpenIndex opens or creates a SQLite index at the given path.
func OpenIndex(path string) (*Index, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Index{db: db}, nil
}

// Close closes the database connection.
func (x *Index) Close() error {
	return x.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS expenses (
			seq INTEGER PRIMARY KEY,
			id INTEGER NOT NULL,
			category TEXT NOT NULL,
			price REAL NOT NULL,
			description TEXT NOT NULL,
			date TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category);
		CREATE INDEX IF NOT EXISTS idx_expenses_id ON expenses(id);

		-- Full-text search over the free-text fields
		CREATE VIRTUAL TABLE IF NOT EXISTS expenses_fts USING fts5(
			seq UNINDEXED,
			category,
			description
		);

		CREATE TABLE IF NOT EXISTS _meta (
			key TEXT PRIMARY KEY,
			value TEXT
		);
	`

	_, err := db.Exec(schema)
	return err
}

// Rebuild clears the index and loads records into it.
// Records keep their insertion order through the seq column.
func (x *Index) Rebuild(records []expense.Expense) error {
	tx, err := x.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM expenses"); err != nil {
		return fmt.Errorf("clearing expenses table: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM expenses_fts"); err != nil {
		return fmt.Errorf("clearing expenses_fts table: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO expenses (seq, ` + selectExpenseFields + `) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing expenses insert: %w", err)
	}
	defer stmt.Close()

	ftsStmt, err := tx.Prepare(`INSERT INTO expenses_fts (seq, category, description) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing fts insert: %w", err)
	}
	defer ftsStmt.Close()

	for i, e := range records {
		if _, err := stmt.Exec(i, e.ID, e.Category, e.Price, e.Description, e.Date); err != nil {
			return fmt.Errorf("inserting expense %d: %w", e.ID, err)
		}
		if _, err := ftsStmt.Exec(i, e.Category, e.Description); err != nil {
			return fmt.Errorf("inserting fts for %d: %w", e.ID, err)
		}
	}

	return tx.Commit()
}

// SyncFrom rebuilds the index from the data file if its content changed since
// the last sync. Returns true when a rebuild happened.
func (x *Index) SyncFrom(file *JSONFile) (bool, error) {
	hash, err := file.Hash()
	if err != nil {
		return false, err
	}

	stored, err := x.storedHash()
	if err != nil {
		return false, fmt.Errorf("reading index metadata: %w", err)
	}
	if stored == hash {
		return false, nil
	}

	records, err := file.Load()
	if err != nil {
		return false, err
	}
	if err := x.Rebuild(records); err != nil {
		return false, err
	}
	if err := x.setMeta("data_hash", hash); err != nil {
		return false, fmt.Errorf("writing index metadata: %w", err)
	}
	if err := x.setMeta("last_sync", time.Now().UTC().Format(time.RFC3339)); err != nil {
		return false, fmt.Errorf("writing index metadata: %w", err)
	}
	return true, nil
}

// Reset forgets the stored data hash so the next SyncFrom rebuilds.
func (x *Index) Reset() error {
	_, err := x.db.Exec(`DELETE FROM _meta WHERE key = 'data_hash'`)
	return err
}

// LastSync returns when the index was last rebuilt from the data file.
// The zero time means it never was.
func (x *Index) LastSync() (time.Time, error) {
	var s sql.NullString
	err := x.db.QueryRow(`SELECT value FROM _meta WHERE key = 'last_sync'`).Scan(&s)
	if err == sql.ErrNoRows || (err == nil && !s.Valid) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, s.String)
}

func (x *Index) storedHash() (string, error) {
	var hash sql.NullString
	err := x.db.QueryRow(`SELECT value FROM _meta WHERE key = 'data_hash'`).Scan(&hash)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return hash.String, nil
}

func (x *Index) setMeta(key, value string) error {
	_, err := x.db.Exec(`INSERT OR REPLACE INTO _meta (key, value) VALUES (?, ?)`, key, value)
	return err
}

// Count returns the number of indexed expenses.
func (x *Index) Count() (int, error) {
	var n int
	if err := x.db.QueryRow(`SELECT COUNT(*) FROM expenses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting expenses: %w", err)
	}
	return n, nil
}

// Totals returns per-category aggregates ordered by total descending.
func (x *Index) Totals() ([]CategoryTotal, error) {
	rows, err := x.db.Query(`
		SELECT category, COUNT(*), SUM(price), MIN(price), MAX(price)
		FROM expenses
		GROUP BY category
		ORDER BY SUM(price) DESC, category ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying totals: %w", err)
	}
	defer rows.Close()

	var totals []CategoryTotal
	for rows.Next() {
		var t CategoryTotal
		if err := rows.Scan(&t.Category, &t.Count, &t.Total, &t.Min, &t.Max); err != nil {
			return nil, fmt.Errorf("scanning totals: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// Search performs a full-text search over category and description.
// Results keep the collection's insertion order.
func (x *Index) Search(query string, limit int) ([]expense.Expense, error) {
	ftsQuery := prepareFTSQuery(query)
	if ftsQuery == "" {
		return nil, nil
	}

	rows, err := x.db.Query(`
		SELECT `+selectExpenseFields+`
		FROM expenses
		WHERE seq IN (SELECT seq FROM expenses_fts WHERE expenses_fts MATCH ?)
		ORDER BY seq
		LIMIT ?`, ftsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer rows.Close()

	var results []expense.Expense
	for rows.Next() {
		var e expense.Expense
		if err := rows.Scan(&e.ID, &e.Category, &e.Price, &e.Description, &e.Date); err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}
		results = append(results, e)
	}
	return results, rows.Err()
}

// prepareFTSQuery turns free text into an FTS5 query matching every term.
// Terms that are not plain words, and the FTS5 operator keywords, are quoted
// so they match literally instead of being parsed as query syntax.
func prepareFTSQuery(query string) string {
	terms := strings.Fields(query)
	for i, term := range terms {
		if !isBareword(term) || ftsKeywords[term] {
			terms[i] = `"` + strings.ReplaceAll(term, `"`, `""`) + `"`
		}
	}
	return strings.Join(terms, " ")
}

var ftsKeywords = map[string]bool{"AND": true, "OR": true, "NOT": true, "NEAR": true}

func isBareword(term string) bool {
	for _, r := range term {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
