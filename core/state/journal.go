// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

// journalEntry is a modification entry in the state change journal that can
// be reverted on demand.
type journalEntry interface {
	revert(*StateDB)
}

type journal struct {
	entries []journalEntry
}

func (j *journal) append(entry journalEntry) {
	j.entries = append(j.entries, entry)
}

// revert undoes a batch of journalled modifications in reverse order.
func (j *journal) revert(s *StateDB, snapshot int) {
	for i := len(j.entries) - 1; i >= snapshot; i-- {
		j.entries[i].revert(s)
	}
	j.entries = j.entries[:snapshot]
}

func (j *journal) length() int {
	return len(j.entries)
}

func (j *journal) reset() {
	j.entries = j.entries[:0]
}

type (
	keyChange struct {
		key     []byte
		prev    []byte
		existed bool
	}
	addLogChange struct{}
)

// Reverting writes to the in-memory layer can only fail once the state has
// been closed, in which case there is nothing left to restore.
func (ch keyChange) revert(s *StateDB) {
	if ch.existed {
		_ = s.db.Put(ch.key, ch.prev)
		return
	}
	_ = s.db.Delete(ch.key)
}

func (addLogChange) revert(s *StateDB) {
	s.logs = s.logs[:len(s.logs)-1]
}
