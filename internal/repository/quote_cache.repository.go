package repository

import (
	"sync"
	"time"

	"portfoliosim/internal/domain"
)

// QuoteCacheRepository is the in-process quote cache shared by every
// request. Only available quotes are stored.
type QuoteCacheRepository interface {
	Get(key domain.QuoteKey) (*domain.PriceQuote, bool)
	Add(key domain.QuoteKey, quote domain.PriceQuote)
	Len() int
}

type cachedQuote struct {
	quote     domain.PriceQuote
	expiresAt time.Time
}

type quoteCacheRepositoryHandler struct {
	ttl       time.Duration
	now       func() time.Time
	cache     map[domain.QuoteKey]cachedQuote
	readMutex *sync.RWMutex
}

// NewQuoteCacheRepository returns a cache whose entries live for ttl. A
// zero ttl keeps entries for the life of the process.
func NewQuoteCacheRepository(ttl time.Duration) QuoteCacheRepository {
	return &quoteCacheRepositoryHandler{
		ttl:       ttl,
		now:       time.Now,
		cache:     map[domain.QuoteKey]cachedQuote{},
		readMutex: &sync.RWMutex{},
	}
}

func (h *quoteCacheRepositoryHandler) Get(key domain.QuoteKey) (*domain.PriceQuote, bool) {
	h.readMutex.RLock()
	entry, ok := h.cache[key]
	h.readMutex.RUnlock()
	if !ok {
		return nil, false
	}

	if h.ttl > 0 && !h.now().Before(entry.expiresAt) {
		h.readMutex.Lock()
		// another writer may have refreshed it in between
		if current, ok := h.cache[key]; ok && !h.now().Before(current.expiresAt) {
			delete(h.cache, key)
		}
		h.readMutex.Unlock()
		return nil, false
	}

	quote := entry.quote
	return &quote, true
}

func (h *quoteCacheRepositoryHandler) Add(key domain.QuoteKey, quote domain.PriceQuote) {
	if !quote.Available() {
		return
	}
	h.readMutex.Lock()
	h.cache[key] = cachedQuote{
		quote:     quote,
		expiresAt: h.now().Add(h.ttl),
	}
	h.readMutex.Unlock()
}

func (h *quoteCacheRepositoryHandler) Len() int {
	h.readMutex.RLock()
	defer h.readMutex.RUnlock()
	return len(h.cache)
}
