package scalingengine

import (
	"hash/fnv"
	"sync"
)

// StripedLock serializes work per table name over a fixed set of mutexes.
// Distinct tables may share a stripe.
type StripedLock struct {
	stripes []sync.Mutex
}

func NewStripedLock(stripes int) *StripedLock {
	if stripes <= 0 {
		panic("invalid striped lock capacity")
	}
	return &StripedLock{stripes: make([]sync.Mutex, stripes)}
}

// Lock blocks until the stripe of tableName is held and returns its release.
func (sl *StripedLock) Lock(tableName string) (unlock func()) {
	m := sl.stripeFor(tableName)
	m.Lock()
	return m.Unlock
}

func (sl *StripedLock) stripeFor(tableName string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(tableName))
	return &sl.stripes[h.Sum32()%uint32(len(sl.stripes))]
}
