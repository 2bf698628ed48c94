//go:build unit

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"tripcore/internal/domain/inventory"
	"tripcore/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDBTX records executed statements and returns a scripted command tag.
type fakeDBTX struct {
	tag      pgconn.CommandTag
	err      error
	lastSQL  string
	lastArgs []any
}

func (f *fakeDBTX) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.lastSQL = sql
	f.lastArgs = args
	return f.tag, f.err
}

func (f *fakeDBTX) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	return nil, errors.New("not scripted")
}

func (f *fakeDBTX) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	return nil
}

func TestInventoryRepository_Consume(t *testing.T) {
	repo := NewInventoryRepository()
	organizationID := uuid.New()
	productID := uuid.New()
	date := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("one row affected means held", func(t *testing.T) {
		tx := &fakeDBTX{tag: pgconn.NewCommandTag("UPDATE 1")}

		held, err := repo.Consume(context.Background(), tx, organizationID, productID, date, 2)
		require.NoError(t, err)
		assert.True(t, held)
		assert.Equal(t, []any{organizationID, productID, date, int32(2)}, tx.lastArgs)
	})

	t.Run("zero rows affected means sold out", func(t *testing.T) {
		tx := &fakeDBTX{tag: pgconn.NewCommandTag("UPDATE 0")}

		held, err := repo.Consume(context.Background(), tx, organizationID, productID, date, 2)
		require.NoError(t, err)
		assert.False(t, held)
	})

	t.Run("statement is guarded against oversell and closure", func(t *testing.T) {
		tx := &fakeDBTX{tag: pgconn.NewCommandTag("UPDATE 1")}

		_, err := repo.Consume(context.Background(), tx, organizationID, productID, date, 2)
		require.NoError(t, err)
		assert.Contains(t, tx.lastSQL, "capacity_available >= $4")
		assert.Contains(t, tx.lastSQL, "closed = false")
	})

	t.Run("exec failure wraps as db error", func(t *testing.T) {
		tx := &fakeDBTX{err: errors.New("connection reset")}

		_, err := repo.Consume(context.Background(), tx, organizationID, productID, date, 2)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestInventoryRepository_Release(t *testing.T) {
	repo := NewInventoryRepository()
	organizationID := uuid.New()
	productID := uuid.New()
	date := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("release clamps at capacity total", func(t *testing.T) {
		tx := &fakeDBTX{tag: pgconn.NewCommandTag("UPDATE 1")}

		err := repo.Release(context.Background(), tx, organizationID, productID, date, 2)
		require.NoError(t, err)
		assert.Contains(t, tx.lastSQL, "LEAST(capacity_available + $4, capacity_total)")
	})

	t.Run("missing record is a no-op", func(t *testing.T) {
		tx := &fakeDBTX{tag: pgconn.NewCommandTag("UPDATE 0")}

		err := repo.Release(context.Background(), tx, organizationID, productID, date, 2)
		require.NoError(t, err)
	})

	t.Run("exec failure wraps as db error", func(t *testing.T) {
		tx := &fakeDBTX{err: errors.New("connection reset")}

		err := repo.Release(context.Background(), tx, organizationID, productID, date, 2)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestInventoryRepository_SetCapacity(t *testing.T) {
	repo := NewInventoryRepository()

	day := &inventory.Day{
		OrganizationID:    uuid.New(),
		ProductID:         uuid.New(),
		Date:              time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		CapacityTotal:     10,
		CapacityAvailable: 10,
		MinStay:           1,
		MaxStay:           14,
	}

	t.Run("upserts the day record", func(t *testing.T) {
		tx := &fakeDBTX{tag: pgconn.NewCommandTag("INSERT 0 1")}

		err := repo.SetCapacity(context.Background(), tx, day)
		require.NoError(t, err)
		assert.Contains(t, tx.lastSQL, "ON CONFLICT (organization_id, product_id, date) DO UPDATE")
	})

	t.Run("exec failure wraps as db error", func(t *testing.T) {
		tx := &fakeDBTX{err: errors.New("connection reset")}

		err := repo.SetCapacity(context.Background(), tx, day)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
