package store_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizforge/quizforge/internal/db"
	"github.com/quizforge/quizforge/internal/store"
)

// newTestDB opens a uniquely named in-memory sqlite database with the
// schema applied. A pinned connection keeps the shared-cache database
// alive while per-method connections come and go.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	dbh, err := db.Open(ctx, db.DriverSQLite, dsn)
	require.NoError(t, err)

	pin, err := dbh.Conn(ctx)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pin.Close()
		_ = dbh.Close()
	})
	return dbh
}

func mustSignup(t *testing.T, accounts *store.AccountStore, username string) {
	t.Helper()
	err := accounts.Create(context.Background(), store.Account{
		Username:     username,
		FirstName:    "First",
		LastName:     "Last",
		PasswordHash: "deadbeef",
	})
	require.NoError(t, err)
}

func TestAccountStore_CreateAndGet(t *testing.T) {
	dbh := newTestDB(t)
	accounts := store.NewAccountStore(dbh)
	ctx := context.Background()

	err := accounts.Create(ctx, store.Account{
		Username:     "alice",
		FirstName:    "Alice",
		LastName:     "Ng",
		PasswordHash: "abc123",
	})
	require.NoError(t, err)

	a, err := accounts.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", a.FirstName)
	assert.Equal(t, "Ng", a.LastName)
	assert.Equal(t, "abc123", a.PasswordHash)
	assert.NotZero(t, a.CreatedAt)
}

func TestAccountStore_DuplicateUsername(t *testing.T) {
	dbh := newTestDB(t)
	accounts := store.NewAccountStore(dbh)
	ctx := context.Background()

	mustSignup(t, accounts, "alice")

	err := accounts.Create(ctx, store.Account{
		Username: "alice", FirstName: "A", LastName: "B", PasswordHash: "x",
	})
	require.ErrorIs(t, err, store.ErrDuplicate)

	var n int
	require.NoError(t, dbh.QueryRow(`SELECT COUNT(*) FROM accounts`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestAccountStore_GetMissing(t *testing.T) {
	dbh := newTestDB(t)
	accounts := store.NewAccountStore(dbh)

	_, err := accounts.GetByUsername(context.Background(), "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestProgressStore_MarkCompletedIsIdempotent(t *testing.T) {
	dbh := newTestDB(t)
	progress := store.NewProgressStore(dbh)
	ctx := context.Background()

	require.NoError(t, progress.MarkCompleted(ctx, "alice", 7))

	var firstTS int64
	require.NoError(t, dbh.QueryRow(
		`SELECT completed_at FROM progress WHERE username='alice' AND question_id=7`).Scan(&firstTS))

	// Backdate the row so the refresh is observable.
	_, err := dbh.Exec(`UPDATE progress SET completed_at=completed_at-100 WHERE username='alice'`)
	require.NoError(t, err)

	require.NoError(t, progress.MarkCompleted(ctx, "alice", 7))

	var n int
	require.NoError(t, dbh.QueryRow(`SELECT COUNT(*) FROM progress`).Scan(&n))
	assert.Equal(t, 1, n, "re-submission must not duplicate the row")

	var secondTS int64
	require.NoError(t, dbh.QueryRow(
		`SELECT completed_at FROM progress WHERE username='alice' AND question_id=7`).Scan(&secondTS))
	assert.GreaterOrEqual(t, secondTS, firstTS, "timestamp refreshed by the second write")
}

func TestProgressStore_Leaderboard(t *testing.T) {
	dbh := newTestDB(t)
	accounts := store.NewAccountStore(dbh)
	progress := store.NewProgressStore(dbh)
	ctx := context.Background()

	mustSignup(t, accounts, "alice")
	mustSignup(t, accounts, "bob")
	mustSignup(t, accounts, "carol")

	for _, q := range []int64{1, 2, 3} {
		require.NoError(t, progress.MarkCompleted(ctx, "alice", q))
	}
	require.NoError(t, progress.MarkCompleted(ctx, "bob", 1))

	rows, err := progress.Leaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "alice", rows[0].Username)
	assert.Equal(t, 3, rows[0].Done)
	assert.Equal(t, "bob", rows[1].Username)
	assert.Equal(t, 1, rows[1].Done)
	assert.Equal(t, "carol", rows[2].Username, "zero-completion accounts are included")
	assert.Equal(t, 0, rows[2].Done)
}

func TestProgressStore_LeaderboardTieBreakByUsername(t *testing.T) {
	dbh := newTestDB(t)
	accounts := store.NewAccountStore(dbh)
	progress := store.NewProgressStore(dbh)
	ctx := context.Background()

	mustSignup(t, accounts, "zoe")
	mustSignup(t, accounts, "amy")
	require.NoError(t, progress.MarkCompleted(ctx, "zoe", 1))
	require.NoError(t, progress.MarkCompleted(ctx, "amy", 2))

	rows, err := progress.Leaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "amy", rows[0].Username)
	assert.Equal(t, "zoe", rows[1].Username)
}

func TestProgressStore_CompletedItems(t *testing.T) {
	dbh := newTestDB(t)
	progress := store.NewProgressStore(dbh)
	ctx := context.Background()

	require.NoError(t, progress.MarkCompleted(ctx, "alice", 5))
	require.NoError(t, progress.MarkCompleted(ctx, "alice", 2))
	require.NoError(t, progress.MarkCompleted(ctx, "bob", 9))

	items, err := progress.CompletedItems(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 5}, items)

	items, err = progress.CompletedItems(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, items)
}
