package memory

import (
	"sync"
	"time"

	"github.com/draftboardhq/bigboard/internal/api/nflfastr"
)

// AggregatesSnapshot is one season's play-by-play aggregation plus when it
// was fetched, so scheduled runs can skip the bulk download while fresh.
type AggregatesSnapshot struct {
	Aggregates *nflfastr.Aggregates
	FetchedAt  time.Time
}

type Repository struct {
	aggregates *AggregatesSnapshot
	mu         sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) SaveAggregates(snapshot *AggregatesSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aggregates = snapshot
}

func (r *Repository) GetAggregates() *AggregatesSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.aggregates
}
