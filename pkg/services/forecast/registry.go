package forecast

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/liquidity-atlas/pkg/services/config"
	"github.com/de-tools/liquidity-atlas/pkg/services/currency"
	"github.com/de-tools/liquidity-atlas/pkg/store/duckdb"
	"github.com/de-tools/liquidity-atlas/pkg/store/duckdb/documents"
	"github.com/de-tools/liquidity-atlas/pkg/store/duckdb/rates"
)

// Session is a controller bound to one profile's database. Close releases
// the underlying connection.
type Session struct {
	Controller Controller
	Documents  documents.Store
	Rates      rates.Store
	Profile    *config.Profile
	db         *sql.DB
}

func (s *Session) Close() error {
	return s.db.Close()
}

// Transact runs fn with a transaction bound to the context; every store
// write inside fn joins it. Rolled back on error, committed otherwise.
func (s *Session) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(duckdb.WithTransaction(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Registry opens forecast sessions for the profiles in the CLI config
// file.
type Registry interface {
	Profiles(ctx context.Context) ([]string, error)
	Create(ctx context.Context, profile string) (*Session, error)
}

type registry struct {
	configs config.Registry
}

func NewRegistry(configs config.Registry) Registry {
	return &registry{configs: configs}
}

func (r *registry) Profiles(ctx context.Context) ([]string, error) {
	return r.configs.GetProfiles(ctx)
}

func (r *registry) Create(ctx context.Context, profile string) (*Session, error) {
	p, err := r.configs.GetProfile(ctx, profile)
	if err != nil {
		return nil, err
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: p.DBPath})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", p.DBPath, err)
	}

	docStore, err := documents.NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	rateStore, err := rates.NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	engine := NewEngine(docStore, currency.NewNormalizer(rateStore))

	return &Session{
		Controller: NewController(engine),
		Documents:  docStore,
		Rates:      rateStore,
		Profile:    p,
		db:         db,
	}, nil
}
