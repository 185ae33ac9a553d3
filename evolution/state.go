// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package evolution

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/ava-labs/libevm/common"

	"github.com/ava-labs/assetregistry/database"
)

// MaxTokenURILength is the maximum number of bytes of a stored token URI.
const MaxTokenURILength = 512

const (
	counterPrefix byte = iota
	ownerPrefix
	publicMintingPrefix
	tokenPrefix
	activationPrefix
)

var counterKey = []byte{counterPrefix}

func collectionKey(prefix byte, id uint64) []byte {
	key := make([]byte, 1+database.Uint64Size)
	key[0] = prefix
	copy(key[1:], database.PackUInt64(id))
	return key
}

func tokensPrefix(id uint64) []byte {
	return collectionKey(tokenPrefix, id)
}

func tokenKey(id uint64, tokenID TokenID) []byte {
	return append(tokensPrefix(id), tokenID[:]...)
}

// ActivationKey is the key marking that the precompile configured under
// [configKey] has been activated.
func ActivationKey(configKey string) []byte {
	return append([]byte{activationPrefix}, configKey...)
}

// CollectionCount returns the number of collections created so far, which is
// also the id of the next collection.
func CollectionCount(db database.KeyValueReader) (uint64, error) {
	return database.WithDefault(database.GetUInt64, db, counterKey, 0)
}

// CreateCollection allocates the next collection id and assigns it to
// [owner]. Public minting starts disabled.
func CreateCollection(db database.KeyValueReaderWriter, owner common.Address) (CollectionCreated, error) {
	id, err := CollectionCount(db)
	if err != nil {
		return CollectionCreated{}, err
	}
	if id == math.MaxUint64 {
		return CollectionCreated{}, ErrCollectionIDOverflow
	}
	if err := db.Put(collectionKey(ownerPrefix, id), owner.Bytes()); err != nil {
		return CollectionCreated{}, err
	}
	if err := database.PutUInt64(db, counterKey, id+1); err != nil {
		return CollectionCreated{}, err
	}
	return CollectionCreated{
		CollectionID: id,
		Owner:        owner,
		Collection:   CollectionAddress(id),
	}, nil
}

// CollectionOwner returns the owner of collection [id] and whether the
// collection exists.
func CollectionOwner(db database.KeyValueReader, id uint64) (common.Address, bool, error) {
	ownerBytes, err := db.Get(collectionKey(ownerPrefix, id))
	switch {
	case errors.Is(err, database.ErrNotFound):
		return common.Address{}, false, nil
	case err != nil:
		return common.Address{}, false, err
	case len(ownerBytes) != common.AddressLength:
		return common.Address{}, false, fmt.Errorf("owner of collection %d has unexpected length %d", id, len(ownerBytes))
	default:
		return common.BytesToAddress(ownerBytes), true, nil
	}
}

func getOwner(db database.KeyValueReader, id uint64) (common.Address, error) {
	owner, ok, err := CollectionOwner(db, id)
	if err != nil {
		return common.Address{}, err
	}
	if !ok {
		return common.Address{}, fmt.Errorf("%w: %d", ErrCollectionDoesNotExist, id)
	}
	return owner, nil
}

func checkOwner(db database.KeyValueReader, caller common.Address, id uint64) (common.Address, error) {
	owner, err := getOwner(db, id)
	if err != nil {
		return common.Address{}, err
	}
	if caller != owner {
		return common.Address{}, fmt.Errorf("%w: %s is not the owner of collection %d", ErrNoPermission, caller, id)
	}
	return owner, nil
}

func isPublicMintingEnabled(db database.KeyValueReader, id uint64) (bool, error) {
	return database.WithDefault(database.GetBool, db, collectionKey(publicMintingPrefix, id), false)
}

// IsPublicMintingEnabled reports whether anyone may mint in collection [id].
func IsPublicMintingEnabled(db database.KeyValueReader, id uint64) (bool, error) {
	if _, err := getOwner(db, id); err != nil {
		return false, err
	}
	return isPublicMintingEnabled(db, id)
}

// MintWithExternalURI mints the token at [slot] for [to] in collection [id].
// The owner may always mint, anyone else only while public minting is
// enabled.
func MintWithExternalURI(
	db database.KeyValueReaderWriter,
	caller common.Address,
	id uint64,
	slot *big.Int,
	to common.Address,
	uri string,
) (TokenMinted, error) {
	owner, err := getOwner(db, id)
	if err != nil {
		return TokenMinted{}, err
	}
	if caller != owner {
		public, err := isPublicMintingEnabled(db, id)
		if err != nil {
			return TokenMinted{}, err
		}
		if !public {
			return TokenMinted{}, fmt.Errorf("%w: %s cannot mint in collection %d", ErrNoPermission, caller, id)
		}
	}

	validSlot, err := ValidateSlot(slot)
	if err != nil {
		return TokenMinted{}, err
	}

	tokenID := NewTokenID(validSlot, to)
	key := tokenKey(id, tokenID)
	minted, err := db.Has(key)
	if err != nil {
		return TokenMinted{}, err
	}
	if minted {
		return TokenMinted{}, fmt.Errorf("%w: %s", ErrAlreadyMinted, tokenID)
	}
	if len(uri) > MaxTokenURILength {
		return TokenMinted{}, fmt.Errorf("%w: %d > %d", ErrTokenURITooLong, len(uri), MaxTokenURILength)
	}
	if err := db.Put(key, []byte(uri)); err != nil {
		return TokenMinted{}, err
	}
	return TokenMinted{
		CollectionID: id,
		Slot:         validSlot,
		To:           to,
		TokenID:      tokenID,
		URI:          uri,
	}, nil
}

// EvolveWithExternalURI replaces the URI of an already minted token.
func EvolveWithExternalURI(
	db database.KeyValueReaderWriter,
	caller common.Address,
	id uint64,
	tokenID TokenID,
	uri string,
) (TokenEvolved, error) {
	if _, err := checkOwner(db, caller, id); err != nil {
		return TokenEvolved{}, err
	}

	key := tokenKey(id, tokenID)
	minted, err := db.Has(key)
	if err != nil {
		return TokenEvolved{}, err
	}
	if !minted {
		return TokenEvolved{}, fmt.Errorf("%w: %s", ErrAssetDoesNotExist, tokenID)
	}
	if len(uri) > MaxTokenURILength {
		return TokenEvolved{}, fmt.Errorf("%w: %d > %d", ErrTokenURITooLong, len(uri), MaxTokenURILength)
	}
	if err := db.Put(key, []byte(uri)); err != nil {
		return TokenEvolved{}, err
	}
	return TokenEvolved{
		CollectionID: id,
		TokenID:      tokenID,
		URI:          uri,
	}, nil
}

// TokenURI returns the URI of [tokenID] in collection [id] and whether the
// token has been minted.
func TokenURI(db database.KeyValueReader, id uint64, tokenID TokenID) (string, bool, error) {
	uri, err := db.Get(tokenKey(id, tokenID))
	switch {
	case errors.Is(err, database.ErrNotFound):
		return "", false, nil
	case err != nil:
		return "", false, err
	default:
		return string(uri), true, nil
	}
}

func TransferOwnership(
	db database.KeyValueReaderWriter,
	caller common.Address,
	id uint64,
	to common.Address,
) (OwnershipTransferred, error) {
	from, err := checkOwner(db, caller, id)
	if err != nil {
		return OwnershipTransferred{}, err
	}
	if err := db.Put(collectionKey(ownerPrefix, id), to.Bytes()); err != nil {
		return OwnershipTransferred{}, err
	}
	return OwnershipTransferred{
		CollectionID: id,
		From:         from,
		To:           to,
	}, nil
}

func EnablePublicMinting(
	db database.KeyValueReaderWriterDeleter,
	caller common.Address,
	id uint64,
) (PublicMintingToggled, error) {
	return setPublicMinting(db, caller, id, true)
}

func DisablePublicMinting(
	db database.KeyValueReaderWriterDeleter,
	caller common.Address,
	id uint64,
) (PublicMintingToggled, error) {
	return setPublicMinting(db, caller, id, false)
}

func setPublicMinting(
	db database.KeyValueReaderWriterDeleter,
	caller common.Address,
	id uint64,
	enabled bool,
) (PublicMintingToggled, error) {
	if _, err := checkOwner(db, caller, id); err != nil {
		return PublicMintingToggled{}, err
	}

	key := collectionKey(publicMintingPrefix, id)
	var err error
	if enabled {
		err = database.PutBool(db, key, true)
	} else {
		err = db.Delete(key)
	}
	if err != nil {
		return PublicMintingToggled{}, err
	}
	return PublicMintingToggled{
		CollectionID: id,
		Enabled:      enabled,
	}, nil
}

// TokenIterator iterates over the minted tokens of a collection in token id
// order.
type TokenIterator struct {
	it      database.Iterator
	tokenID TokenID
	uri     string
	err     error
}

// Tokens returns an iterator over the tokens of collection [id]. The caller
// must release the iterator.
func Tokens(db database.Iteratee, id uint64) *TokenIterator {
	return &TokenIterator{
		it: db.NewIteratorWithPrefix(tokensPrefix(id)),
	}
}

func (t *TokenIterator) Next() bool {
	if t.err != nil || !t.it.Next() {
		return false
	}
	key := t.it.Key()
	if len(key) != 1+database.Uint64Size+TokenIDLen {
		t.err = fmt.Errorf("token key has unexpected length %d", len(key))
		return false
	}
	copy(t.tokenID[:], key[1+database.Uint64Size:])
	t.uri = string(t.it.Value())
	return true
}

func (t *TokenIterator) TokenID() TokenID {
	return t.tokenID
}

func (t *TokenIterator) URI() string {
	return t.uri
}

func (t *TokenIterator) Error() error {
	if t.err != nil {
		return t.err
	}
	return t.it.Error()
}

func (t *TokenIterator) Release() {
	t.it.Release()
}
