package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/sentimark/sentimark/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/sentimark/sentimark/internal/core/domain"
	"github.com/sentimark/sentimark/internal/core/ports/driven"
)

// commentSeparator joins a post's comment thread into a single column.
// Reddit comments cannot contain raw newlines after normalisation, so a
// newline is a safe delimiter.
const commentSeparator = "\n"

// Store is a SQLite-backed post store.
type Store struct {
	db   *sql.DB
	path string
}

var _ driven.PostStore = (*Store)(nil)

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.sentimark/data/sentiment.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".sentimark", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "sentiment.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
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

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_posts.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// storageErr wraps a driver failure so callers can match on the domain
// sentinel while keeping the underlying cause in the message.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, domain.ErrStorageUnavailable, err)
}

// SavePosts inserts classified posts, ignoring ids already present.
// Invalid posts are skipped. Returns the number of new rows written.
func (s *Store) SavePosts(ctx context.Context, posts []domain.Post) (int, error) {
	if len(posts) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, storageErr("beginning transaction", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO posts
			(id, title, body, comments, created_utc, permalink, sentiment, label)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, storageErr("preparing insert", err)
	}
	defer stmt.Close()

	written := 0
	for _, post := range posts {
		if err := post.Validate(); err != nil {
			continue
		}

		result, err := stmt.ExecContext(ctx,
			post.ID, post.Title, post.Body,
			strings.Join(post.Comments, commentSeparator),
			post.CreatedAt, post.Permalink,
			post.SentimentScore, string(post.Label))
		if err != nil {
			return 0, storageErr(fmt.Sprintf("inserting post %s", post.ID), err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return 0, storageErr("counting affected rows", err)
		}
		written += int(affected)
	}

	if err := tx.Commit(); err != nil {
		return 0, storageErr("committing posts", err)
	}
	return written, nil
}

// GetPost retrieves a post by ID.
func (s *Store) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, body, comments, created_utc, permalink,
		       sentiment, label, text_summary, comment_summary
		FROM posts WHERE id = ?
	`, id)

	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storageErr("scanning post", err)
	}
	return post, nil
}

// UpdateSummaries overwrites both summary columns for a post.
func (s *Store) UpdateSummaries(ctx context.Context, id, textSummary, commentSummary string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE posts SET text_summary = ?, comment_summary = ? WHERE id = ?
	`, textSummary, commentSummary, id)
	if err != nil {
		return storageErr("updating summaries", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storageErr("counting affected rows", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetTextSummaryIfUnset writes the text summary only when the column is
// still NULL. Reports whether this call won the write.
func (s *Store) SetTextSummaryIfUnset(ctx context.Context, id, summary string) (bool, error) {
	return s.setIfUnset(ctx, "text_summary", id, summary)
}

// SetCommentSummaryIfUnset writes the comment summary only when the
// column is still NULL. Reports whether this call won the write.
func (s *Store) SetCommentSummaryIfUnset(ctx context.Context, id, summary string) (bool, error) {
	return s.setIfUnset(ctx, "comment_summary", id, summary)
}

func (s *Store) setIfUnset(ctx context.Context, column, id, summary string) (bool, error) {
	// column is one of two compile-time constants, never user input.
	query := fmt.Sprintf("UPDATE posts SET %s = ? WHERE id = ? AND %s IS NULL", column, column)
	result, err := s.db.ExecContext(ctx, query, summary, id)
	if err != nil {
		return false, storageErr("setting "+column, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, storageErr("counting affected rows", err)
	}
	if affected > 0 {
		return true, nil
	}

	// Lost the write or the post does not exist - distinguish the two.
	var exists int
	row := s.db.QueryRowContext(ctx, "SELECT 1 FROM posts WHERE id = ?", id)
	if err := row.Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, domain.ErrNotFound
		}
		return false, storageErr("checking post existence", err)
	}
	return false, nil
}

// Summary returns label counts and the mean compound score over all posts.
func (s *Store) Summary(ctx context.Context) (*domain.SentimentSummary, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(label = ?), 0),
			COALESCE(SUM(label = ?), 0),
			COALESCE(SUM(label = ?), 0),
			COALESCE(AVG(sentiment), 0)
		FROM posts
	`, string(domain.LabelPositive), string(domain.LabelNeutral), string(domain.LabelNegative))

	var summary domain.SentimentSummary
	err := row.Scan(&summary.TotalCount, &summary.PositiveCount,
		&summary.NeutralCount, &summary.NegativeCount, &summary.AverageScore)
	if err != nil {
		return nil, storageErr("scanning summary", err)
	}
	return &summary, nil
}

// DailyCounts returns per-day label counts over the trailing window,
// most recent day first. Days with no posts are omitted.
func (s *Store) DailyCounts(ctx context.Context, days int) ([]domain.DailyCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			date(created_utc, 'unixepoch') AS day,
			COALESCE(SUM(label = ?), 0),
			COALESCE(SUM(label = ?), 0),
			COALESCE(SUM(label = ?), 0)
		FROM posts
		WHERE created_utc >= strftime('%s', 'now') - ? * 86400
		GROUP BY day
		ORDER BY day DESC
	`, string(domain.LabelPositive), string(domain.LabelNeutral), string(domain.LabelNegative), days)
	if err != nil {
		return nil, storageErr("querying daily counts", err)
	}
	defer rows.Close()

	var counts []domain.DailyCount
	for rows.Next() {
		var c domain.DailyCount
		if err := rows.Scan(&c.Day, &c.Positive, &c.Neutral, &c.Negative); err != nil {
			return nil, storageErr("scanning daily count", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterating daily counts", err)
	}
	return counts, nil
}

// TopPosts returns up to n posts carrying the given label within the
// trailing window, most extreme score first. Ties break on id.
func (s *Store) TopPosts(ctx context.Context, label domain.Label, n, days int) ([]domain.Post, error) {
	order := "sentiment DESC, id ASC"
	if label == domain.LabelNegative {
		order = "sentiment ASC, id ASC"
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, title, body, comments, created_utc, permalink,
		       sentiment, label, text_summary, comment_summary
		FROM posts
		WHERE label = ? AND created_utc >= strftime('%%s', 'now') - ? * 86400
		ORDER BY %s
		LIMIT ?
	`, order), string(label), days, n)
	if err != nil {
		return nil, storageErr("querying top posts", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, storageErr("scanning top post", err)
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterating top posts", err)
	}
	return posts, nil
}

// scanner abstracts sql.Row and sql.Rows for shared scan helpers.
type scanner interface {
	Scan(dest ...any) error
}

func scanPost(row scanner) (*domain.Post, error) {
	var post domain.Post
	var comments, label string
	var textSummary, commentSummary sql.NullString
	err := row.Scan(&post.ID, &post.Title, &post.Body, &comments,
		&post.CreatedAt, &post.Permalink, &post.SentimentScore, &label,
		&textSummary, &commentSummary)
	if err != nil {
		return nil, err
	}

	post.Label = domain.Label(label)
	if comments != "" {
		post.Comments = strings.Split(comments, commentSeparator)
	}
	if textSummary.Valid {
		post.TextSummary = &textSummary.String
	}
	if commentSummary.Valid {
		post.CommentSummary = &commentSummary.String
	}
	return &post, nil
}
