package querybuilder

import (
	"testing"
	"time"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("key", "payload").
		From("club_snapshots").
		Where(Eq("key", "footballAppData")).
		Limit(1).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT key, payload FROM club_snapshots WHERE key = $1 LIMIT 1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "footballAppData" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_OnConflict(t *testing.T) {
	query, args, err := InsertInto("club_snapshots").
		Columns("key", "payload").
		Values("k", []byte("{}")).
		OnConflict([]string{"key"}).
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO club_snapshots (key, payload) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_ValueCountMismatch(t *testing.T) {
	if _, _, err := InsertInto("t").Columns("a", "b").Values(1).ToSQL(); err == nil {
		t.Fatalf("expected mismatch error")
	}
}

func TestUpsertModel(t *testing.T) {
	type row struct {
		Key       string    `db:"key"`
		Payload   []byte    `db:"payload"`
		UpdatedAt time.Time `db:"updated_at"`
		ignored   string
		Skipped   string `db:"-"`
	}

	query, args, err := UpsertModel("club_snapshots", row{Key: "k", Payload: []byte("{}"), UpdatedAt: time.Unix(0, 0)}, "key")
	if err != nil {
		t.Fatalf("build upsert: %v", err)
	}

	wantQuery := "INSERT INTO club_snapshots (key, payload, updated_at) VALUES ($1, $2, $3) ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "k" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpsertModel_RejectsInvalidModels(t *testing.T) {
	var nilRow *struct {
		Key string `db:"key"`
	}
	cases := map[string]any{
		"nil pointer": nilRow,
		"not struct":  42,
		"no columns":  struct{ Name string }{Name: "x"},
	}
	for name, model := range cases {
		t.Run(name, func(t *testing.T) {
			if _, _, err := UpsertModel("club_snapshots", model, "key"); err == nil {
				t.Fatalf("expected error for %s", name)
			}
		})
	}
}
