package store

import "github.com/custos-chain/custos"

// Move references for all storage types into this package
// for shorter names everywhere

type KVStore = custos.KVStore
type SetDeleter = custos.SetDeleter
type Batch = custos.Batch
type CacheableKVStore = custos.CacheableKVStore
type KVCacheWrap = custos.KVCacheWrap
