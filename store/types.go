package store

import "github.com/apeunit/dorium-contracts"

// Move references for all storage types into this package
// for shorter names everywhere.

type ReadOnlyKVStore = dorium.ReadOnlyKVStore
type KVStore = dorium.KVStore
type Iterator = dorium.Iterator
type Model = dorium.Model
type CacheableKVStore = dorium.CacheableKVStore
type KVCacheWrap = dorium.KVCacheWrap

// SetDeleter is a minimal interface for writing, subset of KVStore.
type SetDeleter interface {
	Set(key, value []byte)
	Delete(key []byte)
}

// Batch can write multiple operations to an underlying store at once.
type Batch interface {
	SetDeleter
	Write()
}
