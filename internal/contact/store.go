package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Whilreal0/Klima-Pro/internal/db"
)

// Store persists captured leads.
type Store struct {
	db *db.DB
}

// NewStore creates a lead store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Create inserts a new lead from a validated submission.
func (s *Store) Create(ctx context.Context, sub Submission, sourcePage string) (*Lead, error) {
	lead := Lead{
		ID:         uuid.New().String(),
		CreatedAt:  time.Now().UTC(),
		Name:       sub.Name,
		Phone:      sub.Phone,
		Email:      sub.Email,
		Message:    sub.Message,
		SourcePage: sourcePage,
		Status:     "new",
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO leads (id, created_at, name, phone, email, message, source_page, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		lead.ID, lead.CreatedAt, lead.Name, lead.Phone, lead.Email, lead.Message, lead.SourcePage, lead.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting lead: %w", err)
	}
	return &lead, nil
}

// List returns all leads, newest first.
func (s *Store) List(ctx context.Context) ([]Lead, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, name, phone, email, message, source_page, status
		 FROM leads ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	defer rows.Close()

	var leads []Lead
	for rows.Next() {
		var l Lead
		if err := rows.Scan(&l.ID, &l.CreatedAt, &l.Name, &l.Phone, &l.Email, &l.Message, &l.SourcePage, &l.Status); err != nil {
			return nil, fmt.Errorf("scanning lead: %w", err)
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

// Count returns the number of stored leads.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM leads`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting leads: %w", err)
	}
	return n, nil
}
