// Package wire provides dependency injection for the corkboard
// application. It creates the singleton store with lazy
// initialization; tests construct their own isolated stores via
// app.NewBoardService.
package wire

import (
	"context"
	"log"
	"sync"

	"github.com/example/corkboard/internal/adapters/filestore"
	"github.com/example/corkboard/internal/adapters/sqlite"
	"github.com/example/corkboard/internal/app"
	"github.com/example/corkboard/internal/config"
	"github.com/example/corkboard/internal/ident"
	"github.com/example/corkboard/internal/ports/primary"
)

var (
	boardService primary.BoardService
	once         sync.Once
)

// BoardService returns the singleton BoardService instance.
func BoardService() primary.BoardService {
	once.Do(initServices)
	return boardService
}

// initServices initializes the store and runs the one-time legacy
// migration. This is called once via sync.Once.
func initServices() {
	dataDir, err := config.DataDir()
	if err != nil {
		log.Fatalf("failed to resolve data directory: %v", err)
	}

	ids := ident.New()
	repo := filestore.New(dataDir, ids)
	svc := app.NewBoardService(repo, ids)

	// Split any pre-current-format store into per-project documents.
	err = svc.MigrateLegacy(context.Background(),
		filestore.NewLegacyJSON(dataDir),
		sqlite.NewLegacyDB(dataDir),
	)
	if err != nil {
		log.Fatalf("failed to migrate legacy data: %v", err)
	}

	boardService = svc
}
