// Package persist mirrors the entity store to the blob store. Each
// collection is serialized whole under a fixed key after every mutation;
// there is no incremental diffing.
package persist

import (
	"encoding/json"
	"errors"

	"butce/internal/blob"
	"butce/internal/logger"
	"butce/internal/models"
	"butce/internal/store"
)

// Fixed blob keys, one per collection.
const (
	KeyUsers        = "users"
	KeyCategories   = "categories"
	KeyTransactions = "transactions"
)

// Adapter serializes store collections to a blob store and restores them
// at startup.
type Adapter struct {
	blobs blob.Store
}

// New creates an Adapter on top of a blob store.
func New(blobs blob.Store) *Adapter {
	return &Adapter{blobs: blobs}
}

// Load reads all three collections from the blob store. A collection whose
// key is missing or whose stored value fails to parse falls back to the
// corresponding seed collection; parse failures are logged but never
// surfaced to the user.
func (a *Adapter) Load() store.State {
	seed := store.Seed()
	state := store.State{
		Users:        seed.Users,
		Categories:   seed.Categories,
		Transactions: seed.Transactions,
	}

	var users []models.User
	if a.load(KeyUsers, &users) {
		state.Users = users
	}

	var categories models.CategorySet
	if a.load(KeyCategories, &categories) {
		state.Categories = categories
	}

	var transactions []models.Transaction
	if a.load(KeyTransactions, &transactions) {
		state.Transactions = transactions
	}

	return state
}

// SaveUsers writes the user collection through to the blob store.
func (a *Adapter) SaveUsers(users []models.User) {
	a.save(KeyUsers, users)
}

// SaveCategories writes both category groups through to the blob store.
func (a *Adapter) SaveCategories(categories models.CategorySet) {
	a.save(KeyCategories, categories)
}

// SaveTransactions writes the transaction collection through to the blob store.
func (a *Adapter) SaveTransactions(transactions []models.Transaction) {
	a.save(KeyTransactions, transactions)
}

// load fetches and deserializes one key. It reports whether the stored
// value was usable.
func (a *Adapter) load(key string, dest interface{}) bool {
	raw, err := a.blobs.Get(key)
	if err != nil {
		if !errors.Is(err, blob.ErrKeyNotFound) {
			logger.Get().Warnw("failed to read stored collection, using seed data", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		logger.Get().Warnw("stored collection is unreadable, using seed data", "key", key, "error", err)
		return false
	}
	return true
}

// save serializes one collection and writes it. Write-through is
// fire-and-forget: failures are logged, not returned.
func (a *Adapter) save(key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		logger.Get().Errorw("failed to serialize collection", "key", key, "error", err)
		return
	}
	if err := a.blobs.Set(key, raw); err != nil {
		logger.Get().Errorw("failed to persist collection", "key", key, "error", err)
	}
}
