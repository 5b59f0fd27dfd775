package services

import "sync"

// tableLocks serializes check-and-write sequences that must not interleave
// for the same table: reservation slot checks and order creation. SQLite
// serializes individual writes, but the conflict check and the insert are
// two statements and need a wider critical section.
var tableLocks sync.Map // map[uint]*sync.Mutex

func lockTable(tableID uint) func() {
	v, _ := tableLocks.LoadOrStore(tableID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
