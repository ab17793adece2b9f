package logo

import (
	"math/rand/v2"
	"sync"
)

// randCaches remembers generated random numbers keyed by their upper
// bound, so repeated renders of the wordmark stay stable.
var (
	randCaches   = make(map[int]int)
	randCachesMu sync.Mutex
)

// cachedRandN returns a random integer in [0, n). For a given n it
// always returns the same result within a process.
func cachedRandN(n int) int {
	randCachesMu.Lock()
	defer randCachesMu.Unlock()

	if n, ok := randCaches[n]; ok {
		return n
	}

	r := rand.IntN(n)
	randCaches[n] = r
	return r
}
