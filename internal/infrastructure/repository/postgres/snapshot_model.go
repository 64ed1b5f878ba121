package postgres

import "time"

const snapshotTable = "club_snapshots"

type snapshotTableModel struct {
	Key       string    `db:"key"`
	Payload   string    `db:"payload"`
	UpdatedAt time.Time `db:"updated_at"`
}
