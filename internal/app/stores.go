package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/club-manager/internal/config"
	"github.com/riskibarqy/club-manager/internal/infrastructure/repository/file"
	"github.com/riskibarqy/club-manager/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/club-manager/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/club-manager/internal/infrastructure/repository/redis"
	"github.com/riskibarqy/club-manager/internal/infrastructure/snapshot"
)

// openSlots builds one slot per STORE_DRIVERS entry, in order. Handles that
// need closing are registered on a.
func (a *App) openSlots(ctx context.Context, cfg config.Config) ([]snapshot.NamedSlot, error) {
	slots := make([]snapshot.NamedSlot, 0, len(cfg.StoreDrivers))
	for _, driver := range cfg.StoreDrivers {
		slot, err := a.openSlot(ctx, cfg, driver)
		if err != nil {
			return nil, fmt.Errorf("open %s snapshot store: %w", driver, err)
		}
		slots = append(slots, snapshot.NamedSlot{Name: driver, Slot: slot})
	}
	return slots, nil
}

func (a *App) openSlot(ctx context.Context, cfg config.Config, driver string) (snapshot.Slot, error) {
	switch driver {
	case config.StoreMemory:
		return memory.NewSnapshotStore(), nil
	case config.StoreFile:
		return file.NewSnapshotStore(cfg.StoreFileDir)
	case config.StorePostgres:
		db, err := openPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, namedCloser{name: "postgres", close: db.Close})
		return postgres.NewSnapshotStore(db), nil
	case config.StoreRedis:
		client, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, namedCloser{name: "redis", close: client.Close})
		return redis.NewSnapshotStore(client), nil
	default:
		return nil, fmt.Errorf("unknown snapshot store driver %q", driver)
	}
}

func openPostgres(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}
