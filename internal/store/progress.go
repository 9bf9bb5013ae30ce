package store

import (
	"context"
	"database/sql"
	"time"
)

// LeaderboardRow is one per-user aggregate: the account's profile
// fields plus a count of distinct completed questions.
type LeaderboardRow struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Done      int    `json:"done"`
}

type ProgressStore struct {
	db *sql.DB
}

func NewProgressStore(db *sql.DB) *ProgressStore {
	return &ProgressStore{db: db}
}

// MarkCompleted records that username completed questionID. The write
// is an upsert keyed on the unique (username, question_id) pair:
// inserting the row if absent, refreshing completed_at if present.
// Last writer wins under concurrent callers for the same key.
func (s *ProgressStore) MarkCompleted(ctx context.Context, username string, questionID int64) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = conn.ExecContext(ctx,
		`INSERT INTO progress (username, question_id, completed_at)
		 VALUES ($1,$2,$3)
		 ON CONFLICT (username, question_id)
		 DO UPDATE SET completed_at=excluded.completed_at`,
		username, questionID, time.Now().Unix())
	return err
}

// Leaderboard returns one row per registered account, completed-count
// first, usernames ascending as tie-break. Accounts with no progress
// rows appear with Done=0; progress rows without a matching account
// (e.g. grading submissions from unregistered names) are not counted.
func (s *ProgressStore) Leaderboard(ctx context.Context) ([]LeaderboardRow, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx,
		`SELECT a.username, a.first_name, a.last_name, COUNT(p.question_id) AS done
		 FROM accounts a
		 LEFT JOIN progress p ON p.username = a.username
		 GROUP BY a.username, a.first_name, a.last_name
		 ORDER BY done DESC, a.username ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []LeaderboardRow{}
	for rows.Next() {
		var r LeaderboardRow
		if err := rows.Scan(&r.Username, &r.FirstName, &r.LastName, &r.Done); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// CompletedItems returns the question IDs username has completed, in
// ascending order.
func (s *ProgressStore) CompletedItems(ctx context.Context, username string) ([]int64, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx,
		`SELECT question_id FROM progress WHERE username=$1 ORDER BY question_id`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
