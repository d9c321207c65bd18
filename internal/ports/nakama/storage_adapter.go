package nakama

import (
	"context"
	"fmt"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"

	"riichi/internal/ports"
)

// storageClient is the slice of runtime.NakamaModule the adapter needs.
type storageClient interface {
	StorageRead(ctx context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error)
	StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error)
	StorageDelete(ctx context.Context, deletes []*runtime.StorageDelete) error
}

// NakamaStorageAdapter implements ports.Store over Nakama storage, scoping
// every key to a single user in the riichi collection.
type NakamaStorageAdapter struct {
	client storageClient
	userID string
}

// NewNakamaStorageAdapter creates a storage adapter bound to one user.
func NewNakamaStorageAdapter(client storageClient, userID string) *NakamaStorageAdapter {
	return &NakamaStorageAdapter{client: client, userID: userID}
}

// Get reads one key. The second return is false when the key is absent.
func (a *NakamaStorageAdapter) Get(ctx context.Context, key string) (string, bool, error) {
	objects, err := a.client.StorageRead(ctx, []*runtime.StorageRead{
		{
			Collection: StorageCollection,
			Key:        key,
			UserID:     a.userID,
		},
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s/%s: %w", StorageCollection, key, err)
	}
	if len(objects) == 0 {
		return "", false, nil
	}
	return objects[0].Value, true, nil
}

// Set writes one key, replacing any previous value.
func (a *NakamaStorageAdapter) Set(ctx context.Context, key, value string) error {
	_, err := a.client.StorageWrite(ctx, []*runtime.StorageWrite{
		{
			Collection:      StorageCollection,
			Key:             key,
			UserID:          a.userID,
			Value:           value,
			PermissionRead:  runtime.STORAGE_PERMISSION_OWNER_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_OWNER_WRITE,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write %s/%s: %w", StorageCollection, key, err)
	}
	return nil
}

// Remove deletes one key. Deleting an absent key is not an error.
func (a *NakamaStorageAdapter) Remove(ctx context.Context, key string) error {
	err := a.client.StorageDelete(ctx, []*runtime.StorageDelete{
		{
			Collection: StorageCollection,
			Key:        key,
			UserID:     a.userID,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", StorageCollection, key, err)
	}
	return nil
}

var _ ports.Store = (*NakamaStorageAdapter)(nil)
