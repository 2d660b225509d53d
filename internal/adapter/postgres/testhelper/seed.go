package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/evekit/synctrack/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAccount creates a sync account of the given kind owned by a fresh user.
func SeedAccount(t *testing.T, pool *pgxpool.Pool, kind domain.AccountKind) domain.SyncAccount {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	acc := domain.SyncAccount{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		Name:           "account-" + suffix,
		Kind:           kind,
		EveCharacterID: 90000000 + time.Now().UnixNano()%1000000,
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}
	if kind == domain.AccountKindCorporation {
		acc.EveCorporationID = 98000000 + time.Now().UnixNano()%1000000
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO sync_accounts (id, user_id, name, kind, eve_character_id, eve_corporation_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		acc.ID, acc.UserID, acc.Name, string(acc.Kind), acc.EveCharacterID, acc.EveCorporationID, acc.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount insert: %v", err)
	}

	return acc
}

// SeedAccessKey inserts an access key for the account with a fresh id from
// the global sequence.
func SeedAccessKey(t *testing.T, pool *pgxpool.Pool, accountID uuid.UUID, name string, mask domain.AccessMask) domain.AccessKey {
	t.Helper()
	ctx := context.Background()

	if mask == nil {
		mask = domain.AccessMask{}
	}
	now := time.Now().UTC().Truncate(time.Microsecond)
	key := domain.AccessKey{
		AccountID: accountID,
		Name:      name,
		Mask:      mask,
		Seed:      time.Now().UnixNano(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO access_keys (id, account_id, name, mask, seed, created_at, updated_at)
		 VALUES (nextval('access_key_id_seq'), $1, $2, $3, $4, $5, $5)
		 RETURNING id`,
		key.AccountID, key.Name, []byte(key.Mask), key.Seed, now,
	).Scan(&key.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedAccessKey insert: %v", err)
	}

	return key
}
