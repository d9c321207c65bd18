package nakama

import (
	"context"
	"database/sql"

	"github.com/heroiclabs/nakama-common/runtime"

	"riichi/internal/config"
)

// gameConfigPath is resolved relative to the Nakama data directory.
const gameConfigPath = "data/riichi_config.json"

// InitModule wires RPCs for the Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if err := config.LoadGameConfig(gameConfigPath); err != nil {
		return err
	}

	if err := RegisterRPCs(initializer); err != nil {
		return err
	}

	logger.Info("Riichi Go module loaded.")
	return nil
}
