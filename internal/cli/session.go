package cli

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/stockroom/internal/paths"
	"github.com/mesh-intelligence/stockroom/pkg/inventory"
	"github.com/mesh-intelligence/stockroom/pkg/sqlite"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// session is one attach-restore-act-save-detach cycle against the store.
type session struct {
	dataDir string
	store   types.Store
	inv     *inventory.Inventory
	// found reports whether the store held a snapshot before this session.
	found bool
}

// openSession attaches the configured store and rebuilds the inventory from
// its snapshot. A stored snapshot keeps its own space; config.yaml only sizes
// a new inventory. The caller must close the session.
func (a *app) openSession() (*session, error) {
	dataDir, err := paths.ResolveDataDir(a.dataDir, a.settings.DataDir)
	if err != nil {
		return nil, systemError{fmt.Errorf("resolve data dir: %w", err)}
	}

	strategy, err := inventory.NewStrategy(a.settings.strategyConfig())
	if err != nil {
		return nil, err
	}

	store := sqlite.NewBackend(a.logger)
	cfg := types.Config{Backend: a.settings.Backend, DataDir: dataDir}
	if err := store.Attach(cfg); err != nil {
		return nil, systemError{fmt.Errorf("attach store: %w", err)}
	}

	snap, found, err := store.Load()
	if err != nil {
		store.Detach()
		return nil, systemError{fmt.Errorf("load inventory: %w", err)}
	}

	opts := []inventory.Option{inventory.WithLogger(a.logger)}
	var inv *inventory.Inventory
	if found {
		inv, err = inventory.Restore(snap, strategy, opts...)
	} else {
		inv, err = inventory.New(a.settings.Space, strategy, opts...)
	}
	if err != nil {
		store.Detach()
		return nil, err
	}

	a.logger.Debug("session opened",
		zap.String("data_dir", dataDir),
		zap.Bool("restored", found))
	return &session{dataDir: dataDir, store: store, inv: inv, found: found}, nil
}

func (s *session) save() error {
	if err := s.store.Save(s.inv.Snapshot()); err != nil {
		return systemError{fmt.Errorf("save inventory: %w", err)}
	}
	return nil
}

func (s *session) close() error {
	return s.store.Detach()
}

// withInventory runs fn against the restored inventory. When persist is
// true and fn succeeds, the resulting state is saved before detaching.
func (a *app) withInventory(persist bool, fn func(inv *inventory.Inventory) error) error {
	s, err := a.openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if err := fn(s.inv); err != nil {
		return err
	}
	if persist {
		return s.save()
	}
	return nil
}
