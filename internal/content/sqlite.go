package content

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	"github.com/editoria/editoria-server/internal/domain"
)

//go:embed schema.sql
var schemaSQL string

// contentColumns is the ordered list of columns selected in content queries.
// Must match the scan order in scanContent.
const contentColumns = `id, type, title, excerpt, published_at, status, author, thumbnail, url`

// SQLiteSource reads the content catalog from a SQLite database.
type SQLiteSource struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open creates a content source backed by the SQLite database at path.
// It configures WAL mode, sets pragmas, and ensures the schema exists.
func Open(path string, logger *slog.Logger) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("exec schema: %w", err)
	}

	if logger != nil {
		logger.Info("content database opened", "path", path)
	}

	return &SQLiteSource{db: db, logger: logger}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

// ListPages implements Source.
func (s *SQLiteSource) ListPages(ctx context.Context) ([]domain.Content, error) {
	return s.listByType(ctx, domain.ContentTypePage)
}

// ListArticles implements Source.
func (s *SQLiteSource) ListArticles(ctx context.Context) ([]domain.Content, error) {
	return s.listByType(ctx, domain.ContentTypeArticle)
}

func (s *SQLiteSource) listByType(ctx context.Context, ct domain.ContentType) ([]domain.Content, error) {
	query := fmt.Sprintf(`SELECT %s FROM contents WHERE type = ? ORDER BY id`, contentColumns)

	rows, err := s.db.QueryContext(ctx, query, string(ct))
	if err != nil {
		return nil, fmt.Errorf("list %s contents: %w", ct, err)
	}
	defer rows.Close()

	var items []domain.Content
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// Upsert inserts or replaces a content row. Used by the seed tool.
func (s *SQLiteSource) Upsert(ctx context.Context, c *domain.Content) error {
	var publishedAt sql.NullString
	if !c.PublishedAt.IsZero() {
		publishedAt = sql.NullString{String: c.PublishedAt.UTC().Format(time.RFC3339Nano), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contents (id, type, title, excerpt, published_at, status, author, thumbnail, url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			type = excluded.type,
			title = excluded.title,
			excerpt = excluded.excerpt,
			published_at = excluded.published_at,
			status = excluded.status,
			author = excluded.author,
			thumbnail = excluded.thumbnail,
			url = excluded.url`,
		c.ID, string(c.Type), c.Title,
		nullString(c.Excerpt), publishedAt, nullString(c.Status),
		nullString(c.Author), nullString(c.Thumbnail), c.URL,
	)
	if err != nil {
		return fmt.Errorf("upsert content %s: %w", c.ID, err)
	}
	return nil
}

// scanContent scans a sql.Row (or sql.Rows via its Scan method) into a domain.Content.
func scanContent(scanner interface{ Scan(dest ...any) error }) (*domain.Content, error) {
	var (
		c           domain.Content
		contentType string
		excerpt     sql.NullString
		publishedAt sql.NullString
		status      sql.NullString
		author      sql.NullString
		thumbnail   sql.NullString
	)

	err := scanner.Scan(
		&c.ID,
		&contentType,
		&c.Title,
		&excerpt,
		&publishedAt,
		&status,
		&author,
		&thumbnail,
		&c.URL,
	)
	if err != nil {
		return nil, err
	}

	c.Type = domain.ContentType(contentType)
	c.Excerpt = excerpt.String
	c.Status = status.String
	c.Author = author.String
	c.Thumbnail = thumbnail.String

	if publishedAt.Valid && publishedAt.String != "" {
		t, err := time.Parse(time.RFC3339Nano, publishedAt.String)
		if err != nil {
			return nil, fmt.Errorf("parse published_at for %s: %w", c.ID, err)
		}
		c.PublishedAt = t
	}

	return &c, nil
}

// nullString returns a sql.NullString that is NULL for the empty string.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
