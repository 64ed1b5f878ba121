package postgres

import (
	"context"
	"errors"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	qb "github.com/riskibarqy/club-manager/internal/platform/querybuilder"
)

// undefinedTable is the SQLSTATE postgres returns before migrations ran.
const undefinedTable = "42P01"

var ErrSchemaMissing = errors.New("club_snapshots table is missing, run cmd/migration up")

// SnapshotStore keeps encoded snapshots in the club_snapshots table, one row
// per key.
type SnapshotStore struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewSnapshotStore(db *sqlx.DB) *SnapshotStore {
	return &SnapshotStore{db: db, now: time.Now}
}

func (s *SnapshotStore) Read(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := qb.Select("key", "payload", "updated_at").
		From(snapshotTable).
		Where(qb.Eq("key", key)).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, false, crerr.Wrap(err, "build select snapshot query")
	}

	var row snapshotTableModel
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, false, nil
		}
		return nil, false, classify(err, "select snapshot")
	}
	return []byte(row.Payload), true, nil
}

func (s *SnapshotStore) Write(ctx context.Context, key string, payload []byte) error {
	query, args, err := qb.UpsertModel(snapshotTable, snapshotTableModel{
		Key:       key,
		Payload:   string(payload),
		UpdatedAt: s.now().UTC(),
	}, "key")
	if err != nil {
		return crerr.Wrap(err, "build upsert snapshot query")
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return classify(err, "upsert snapshot")
	}
	return nil
}
