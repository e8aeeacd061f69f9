package cache

import (
	"context"
	"sync"
	"time"

	log "github.com/Sirupsen/logrus"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"

	"github.com/lexcounsel/site-backend/cms"
	"github.com/lexcounsel/site-backend/consts"
	"github.com/lexcounsel/site-backend/utils"
)

type SectionFetcher interface {
	FetchTeamSection(ctx context.Context, locale string) (*cms.TeamSectionResponse, error)
	FetchHeroSection(ctx context.Context, locale string) (*cms.HeroSectionResponse, error)
	FetchClientSection(ctx context.Context, locale string) (*cms.ClientSectionResponse, error)
}

type SnapshotLoader interface {
	Load(section, locale string, v interface{}) error
}

type SectionsCache interface {
	Provider
	Team(ctx context.Context, locale string) (*cms.TeamSectionResponse, error)
	Hero(ctx context.Context, locale string) (*cms.HeroSectionResponse, error)
	Clients(ctx context.Context, locale string) (*cms.ClientSectionResponse, error)
	Invalidate(section string)
	RefreshSection(ctx context.Context, section string) error
}

type sectionKey struct {
	section string
	locale  string
}

type sectionEntry struct {
	value   interface{}
	fetched time.Time
}

// SectionsCacheImpl keeps the last CMS answer per section and locale.
// Entries older than staleness are refetched on access. When the CMS
// fails, a stale entry or the on-disk snapshot is served instead.
type SectionsCacheImpl struct {
	fetcher   SectionFetcher
	snapshot  SnapshotLoader
	staleness time.Duration
	timeout   time.Duration

	mu      sync.RWMutex
	entries map[sectionKey]sectionEntry
	group   singleflight.Group
	now     func() time.Time
}

func NewSectionsCacheImpl(fetcher SectionFetcher, snapshot SnapshotLoader, staleness time.Duration) *SectionsCacheImpl {
	if staleness <= 0 {
		staleness = consts.DEFAULT_CMS_STALENESS
	}
	return &SectionsCacheImpl{
		fetcher:   fetcher,
		snapshot:  snapshot,
		staleness: staleness,
		timeout:   30 * time.Second,
		entries:   make(map[sectionKey]sectionEntry),
		now:       time.Now,
	}
}

func (c *SectionsCacheImpl) String() string {
	return "SectionsCache"
}

func (c *SectionsCacheImpl) Team(ctx context.Context, locale string) (*cms.TeamSectionResponse, error) {
	v, err := c.get(ctx, consts.SECTION_TEAM, locale)
	if err != nil {
		return nil, err
	}
	return v.(*cms.TeamSectionResponse), nil
}

func (c *SectionsCacheImpl) Hero(ctx context.Context, locale string) (*cms.HeroSectionResponse, error) {
	v, err := c.get(ctx, consts.SECTION_HERO, locale)
	if err != nil {
		return nil, err
	}
	return v.(*cms.HeroSectionResponse), nil
}

func (c *SectionsCacheImpl) Clients(ctx context.Context, locale string) (*cms.ClientSectionResponse, error) {
	v, err := c.get(ctx, consts.SECTION_CLIENTS, locale)
	if err != nil {
		return nil, err
	}
	return v.(*cms.ClientSectionResponse), nil
}

func (c *SectionsCacheImpl) Invalidate(section string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k.section == section {
			delete(c.entries, k)
		}
	}
}

// RefreshSection refetches a section in every locale. A locale the CMS
// fails on keeps its previous entry; the others are still refreshed.
func (c *SectionsCacheImpl) RefreshSection(ctx context.Context, section string) error {
	var err error
	for _, lang := range consts.ALL_LANGS {
		v, ferr := c.fetch(ctx, section, lang)
		if ferr != nil {
			log.Warnf("SectionsCache: refresh %s [%s]: %s", section, lang, ferr.Error())
			err = utils.JoinErrors(err, ferr)
			continue
		}
		c.store(sectionKey{section, lang}, v)
	}
	return err
}

func (c *SectionsCacheImpl) Refresh() error {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	var firstErr error
	for _, section := range consts.ALL_SECTIONS {
		if err := c.RefreshSection(ctx, section); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (c *SectionsCacheImpl) get(ctx context.Context, section, locale string) (interface{}, error) {
	key := sectionKey{section, locale}

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && c.now().Sub(entry.fetched) < c.staleness {
		return entry.value, nil
	}

	// The flight outlives any single caller.
	v, err, _ := c.group.Do(section+"/"+locale, func() (interface{}, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()
		return c.fetch(fctx, section, locale)
	})
	if err == nil {
		c.store(key, v)
		return v, nil
	}

	if ok {
		log.Warnf("SectionsCache: serving stale %s [%s]: %s", section, locale, err.Error())
		return entry.value, nil
	}
	if c.snapshot != nil {
		sv := newSection(section)
		if serr := c.snapshot.Load(section, locale, sv); serr == nil {
			log.Warnf("SectionsCache: serving snapshot %s [%s]: %s", section, locale, err.Error())
			return sv, nil
		}
	}
	return nil, err
}

func (c *SectionsCacheImpl) fetch(ctx context.Context, section, locale string) (interface{}, error) {
	switch section {
	case consts.SECTION_TEAM:
		return c.fetcher.FetchTeamSection(ctx, locale)
	case consts.SECTION_HERO:
		return c.fetcher.FetchHeroSection(ctx, locale)
	case consts.SECTION_CLIENTS:
		return c.fetcher.FetchClientSection(ctx, locale)
	}
	return nil, errors.Errorf("Unknown section: %s", section)
}

func (c *SectionsCacheImpl) store(key sectionKey, v interface{}) {
	c.mu.Lock()
	c.entries[key] = sectionEntry{value: v, fetched: c.now()}
	c.mu.Unlock()
}

func newSection(section string) interface{} {
	switch section {
	case consts.SECTION_TEAM:
		return new(cms.TeamSectionResponse)
	case consts.SECTION_HERO:
		return new(cms.HeroSectionResponse)
	default:
		return new(cms.ClientSectionResponse)
	}
}
