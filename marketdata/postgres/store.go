package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq" // register postgres driver

	"github.com/meenmo/parcurve/marketdata"
	"github.com/meenmo/parcurve/swap"
)

const dateFormat = "2006-01-02"

const schema = `CREATE TABLE IF NOT EXISTS swap_quotes (
	value_date date             NOT NULL,
	maturity   double precision NOT NULL,
	rate       double precision NOT NULL,
	PRIMARY KEY (value_date, maturity)
)`

// Open connects to postgres, verifies the connection, and ensures the quote
// table exists.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return db, nil
}

// Store persists par swap quotes keyed by value date.
type Store struct {
	db *sql.DB
}

var _ marketdata.QuoteFeed = (*Store)(nil)

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// SaveQuotes inserts the quotes observed on a value date, skipping rows whose
// (value_date, maturity) key already exists. It returns the number of rows
// actually written.
func (s *Store) SaveQuotes(ctx context.Context, valueDate time.Time, quotes []swap.Quote) (int64, error) {
	if len(quotes) == 0 {
		return 0, nil
	}

	placeholders := make([]string, len(quotes))
	args := make([]any, 0, len(quotes)*3)
	for i, q := range quotes {
		placeholders[i] = fmt.Sprintf("($%d, $%d, $%d)", i*3+1, i*3+2, i*3+3)
		args = append(args, valueDate.Format(dateFormat), q.Maturity, q.Rate)
	}

	query := fmt.Sprintf(
		"INSERT INTO swap_quotes (value_date, maturity, rate) VALUES %s ON CONFLICT DO NOTHING",
		strings.Join(placeholders, ", "),
	)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("save quotes: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// Quotes returns the stored quotes for a value date in ascending maturity
// order, satisfying marketdata.QuoteFeed. A date with no rows reports
// marketdata.ErrNoQuotes.
func (s *Store) Quotes(ctx context.Context, valueDate time.Time) ([]swap.Quote, error) {
	const query = `SELECT maturity, rate FROM swap_quotes
		WHERE value_date = $1
		ORDER BY maturity ASC`

	rows, err := s.db.QueryContext(ctx, query, valueDate.Format(dateFormat))
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var quotes []swap.Quote
	for rows.Next() {
		var q swap.Quote
		if err := rows.Scan(&q.Maturity, &q.Rate); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return nil, fmt.Errorf("postgres: %s: %w", valueDate.Format(dateFormat), marketdata.ErrNoQuotes)
	}
	return quotes, nil
}
