package store

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/Dhakshin2007/TradeoBull/internal/auth"
	"github.com/Dhakshin2007/TradeoBull/internal/config"
	"github.com/Dhakshin2007/TradeoBull/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB connects to a local database, skipping the test when none is
// reachable so the suite runs without services.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(config.FromEnv().DSN())
	if err != nil {
		t.Skipf("no test database reachable: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	require.NoError(t, EnsureSchema(context.Background(), db))
	return db
}

// testIdentity returns a unique identity so runs never collide.
func testIdentity(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

func TestPostgresRemote_UpsertFetchRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	remote := NewPostgresRemote(db)
	ctx := context.Background()

	identity := testIdentity("roundtrip")
	p := models.DefaultProfile(identity)
	p.Name = "Integration Trader"
	p.Balance = decimal.NewFromInt(98765)
	p.Portfolio = []models.PortfolioItem{{Symbol: "SBIN", Quantity: 3, AveragePrice: decimal.NewFromInt(790)}}

	require.NoError(t, remote.Upsert(ctx, p))

	got, err := remote.Fetch(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, "Integration Trader", got.Name)
	assert.True(t, got.Balance.Equal(decimal.NewFromInt(98765)))
	require.Len(t, got.Portfolio, 1)
	assert.Equal(t, 3, got.Portfolio[0].Quantity)

	// Overwrite semantics: the second upsert fully replaces the row.
	p.Portfolio = nil
	p.Balance = decimal.NewFromInt(50000)
	require.NoError(t, remote.Upsert(ctx, p))

	got, err = remote.Fetch(ctx, identity)
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(decimal.NewFromInt(50000)))
	assert.Len(t, got.Portfolio, 0)
}

func TestPostgresRemote_FetchMissing(t *testing.T) {
	db := setupTestDB(t)
	remote := NewPostgresRemote(db)

	_, err := remote.Fetch(context.Background(), testIdentity("missing"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostgresGateway_SignUpSignIn(t *testing.T) {
	db := setupTestDB(t)
	gw := auth.NewPostgresGateway(db)
	ctx := context.Background()

	email := testIdentity("gateway")
	identity, err := gw.SignUp(ctx, email, "Gateway Tester", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, email, identity)

	_, err = gw.SignUp(ctx, email, "Gateway Tester", "hunter22")
	assert.ErrorIs(t, err, auth.ErrAlreadyRegistered)

	got, err := gw.SignIn(ctx, email, "hunter22")
	require.NoError(t, err)
	assert.Equal(t, email, got)

	_, err = gw.SignIn(ctx, email, "wrong-password")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
