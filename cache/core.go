package cache

import (
	"sync"
	"time"

	log "github.com/Sirupsen/logrus"

	"github.com/lexcounsel/site-backend/utils"
)

type Refreshable interface {
	Refresh() error
}

type Provider interface {
	Refreshable
	String() string
}

type CacheManager interface {
	Sections() SectionsCache
	Close()
}

type CacheManagerImpl struct {
	sections         SectionsCache
	ticker           *time.Ticker
	ticks            int64
	refreshIntervals map[string]int64
	providers        []Provider
	done             chan struct{}
	closeOnce        sync.Once
}

// NewCacheManagerImpl refreshes all providers once and then periodically.
// refreshIntervals is keyed by provider name, a missing or zero interval
// disables periodic refresh of that provider.
func NewCacheManagerImpl(sections SectionsCache, refreshIntervals map[string]time.Duration) CacheManager {
	cm := new(CacheManagerImpl)
	cm.sections = sections
	cm.providers = []Provider{sections}
	cm.done = make(chan struct{})

	cm.refresh(cm.providers)

	// Convert time.Duration to int64
	// So we would have refresh intervals in integer multiple of a second
	cm.refreshIntervals = make(map[string]int64, len(refreshIntervals))
	for k, v := range refreshIntervals {
		cm.refreshIntervals[k] = int64(v.Truncate(time.Second).Seconds())
	}

	cm.ticker = time.NewTicker(time.Second)
	go func() {
		for {
			select {
			case <-cm.done:
				return
			case <-cm.ticker.C:
				cm.ticks++
				cm.refresh(cm.due(cm.ticks))
			}
		}
	}()

	return cm
}

func (cm *CacheManagerImpl) Close() {
	cm.closeOnce.Do(func() {
		cm.ticker.Stop()
		close(cm.done)
	})
}

func (cm *CacheManagerImpl) Sections() SectionsCache {
	return cm.sections
}

func (cm *CacheManagerImpl) due(ticks int64) []Provider {
	res := make([]Provider, 0)
	for _, p := range cm.providers {
		interval := cm.refreshIntervals[p.String()]
		if interval > 0 && ticks%interval == 0 {
			res = append(res, p)
		}
	}
	return res
}

func (cm *CacheManagerImpl) refresh(providers []Provider) {
	for _, p := range providers {
		log.Infof("Refreshing %s", p)
		if err := p.Refresh(); err != nil {
			log.Errorf("Refresh %s: %s", p, err.Error())
			utils.LogError(err)
		}
	}
}
