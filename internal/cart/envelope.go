package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/sreerojavusa/Travelgear/internal/domain"
	"github.com/sreerojavusa/Travelgear/internal/storage"
)

// SchemaVersion tags every persisted cart payload. Payloads with a
// different version, or ones that fail to parse, load as an empty
// collection instead of failing the caller.
const SchemaVersion = 1

type envelope struct {
	Version   int               `json:"version"`
	Lines     []domain.CartLine `json:"lines"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func loadLines(ctx context.Context, store storage.SlotStore, key string) ([]domain.CartLine, error) {
	data, err := store.Get(ctx, key)
	if errors.Is(err, storage.ErrSlotNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot %s: %w", key, err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		log.Printf("discarding unparseable payload in slot %s: %v", key, err)
		return nil, nil
	}
	if env.Version != SchemaVersion {
		log.Printf("discarding slot %s with schema version %d", key, env.Version)
		return nil, nil
	}
	return env.Lines, nil
}

func persistLines(ctx context.Context, store storage.SlotStore, key string, lines []domain.CartLine) error {
	env := envelope{
		Version:   SchemaVersion,
		Lines:     lines,
		UpdatedAt: time.Now(),
	}
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal slot %s: %w", key, err)
	}
	if err := store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to persist slot %s: %w", key, err)
	}
	return nil
}
