package common

import (
	"context"
	"database/sql"
	"time"

	log "github.com/Sirupsen/logrus"
	_ "github.com/lib/pq"
	"github.com/spf13/viper"

	"github.com/lexcounsel/site-backend/cache"
	"github.com/lexcounsel/site-backend/cms"
	"github.com/lexcounsel/site-backend/consts"
	"github.com/lexcounsel/site-backend/events"
	"github.com/lexcounsel/site-backend/search"
	"github.com/lexcounsel/site-backend/subscription"
	"github.com/lexcounsel/site-backend/utils"
)

var (
	DB            *sql.DB
	LOGGER        *search.SearchLogger
	ENGINE        *search.Engine
	SEARCH_CACHE  *search.SearchCache
	CMS           *cms.Client
	CACHE         cache.CacheManager
	QUEUE         *events.TaskQueue
	DEBOUNCER     *events.Debouncer
	PUBLISHER     events.Publisher
	CMS_EVENTS    *events.CMSEventHandler
	SUBSCRIPTIONS *subscription.Service
)

func setDefaults() {
	viper.SetDefault("server.bind-address", ":8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.log-level", "info")
	viper.SetDefault("server.subscribe-rate", 0.2)
	viper.SetDefault("server.subscribe-burst", 3)
	viper.SetDefault("cms.timeout", 10*time.Second)
	viper.SetDefault("cms.retries", 2)
	viper.SetDefault("cms.retry-delay", 500*time.Millisecond)
	viper.SetDefault("cms.staleness", consts.DEFAULT_CMS_STALENESS)
	viper.SetDefault("cms.refresh-interval", consts.DEFAULT_CMS_STALENESS)
	viper.SetDefault("cms.webhook-debounce", consts.DEFAULT_WEBHOOK_DEBOUNCE)
	viper.SetDefault("search.suggest-latency", consts.DEFAULT_SUGGEST_LATENCY)
	viper.SetDefault("search.search-latency", consts.DEFAULT_SEARCH_LATENCY)
	viper.SetDefault("search.cross-script-match", true)
	viper.SetDefault("search.cache-ttl", 10*time.Minute)
	viper.SetDefault("nats.subject", "site.events")
	viper.SetDefault("nats.cms-subject", "cms.events")
}

func Init() time.Time {
	clock := time.Now()
	setDefaults()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if level, err := log.ParseLevel(viper.GetString("server.log-level")); err == nil {
		log.SetLevel(level)
	} else {
		log.Warnf("Bad log level %q: %s", viper.GetString("server.log-level"), err.Error())
	}

	utils.InitRollbar(viper.GetString("server.rollbar-token"), viper.GetString("server.rollbar-environment"))

	QUEUE = events.NewTaskQueue(1000)
	DEBOUNCER = events.NewDebouncer()

	initSearch()
	initCMS()
	initEvents()

	SUBSCRIPTIONS = subscription.NewService(CMS, PUBLISHER, QUEUE)

	return clock
}

func initSearch() {
	if url := viper.GetString("search.log-url"); url != "" {
		log.Info("Setting up connection to search log DB")
		var err error
		DB, err = sql.Open("postgres", url)
		utils.Must(err)
		utils.Must(DB.Ping())
		LOGGER = search.MakeSearchLogger(DB)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		utils.Must(LOGGER.EnsureSchema(ctx))
	} else {
		log.Info("search.log-url is not set, searches will not be logged")
	}

	SEARCH_CACHE = search.MakeSearchCache(viper.GetDuration("search.cache-ttl"), 1000)
	ENGINE = search.NewEngine(search.EngineOptions{
		Matcher:        search.Matcher{CrossScript: viper.GetBool("search.cross-script-match")},
		SuggestLatency: viper.GetDuration("search.suggest-latency"),
		SearchLatency:  viper.GetDuration("search.search-latency"),
		Cache:          SEARCH_CACHE,
	})
}

func initCMS() {
	log.Infof("Using CMS at %s", viper.GetString("cms.url"))
	CMS = cms.NewClient(cms.Options{
		URL:        viper.GetString("cms.url"),
		MediaURL:   viper.GetString("cms.media-url"),
		Token:      viper.GetString("cms.token"),
		Timeout:    viper.GetDuration("cms.timeout"),
		Retries:    uint(viper.GetInt("cms.retries")),
		RetryDelay: viper.GetDuration("cms.retry-delay"),
	})

	var snapshot cache.SnapshotLoader
	if assets := viper.GetString("cms.assets"); assets != "" {
		snapshot = &cms.Snapshot{Assets: assets}
	}
	sections := cache.NewSectionsCacheImpl(CMS, snapshot, viper.GetDuration("cms.staleness"))

	refreshIntervals := map[string]time.Duration{
		sections.String(): viper.GetDuration("cms.refresh-interval"),
	}
	CACHE = cache.NewCacheManagerImpl(sections, refreshIntervals)

	CMS_EVENTS = events.NewCMSEventHandler(CACHE.Sections(), DEBOUNCER, QUEUE, viper.GetDuration("cms.webhook-debounce"))
}

func initEvents() {
	PUBLISHER = events.NoopPublisher{}

	url := viper.GetString("nats.url")
	if url == "" {
		log.Info("nats.url is not set, events will not be published")
		return
	}

	log.Infof("Connecting to NATS streaming at %s", url)
	conn, err := events.Connect(url, viper.GetString("nats.cluster-id"), viper.GetString("nats.client-id"))
	if err != nil {
		log.Errorf("NATS connect: %s", err.Error())
		utils.LogError(err)
		return
	}
	PUBLISHER = events.NewNatsPublisher(conn, viper.GetString("nats.subject"))

	if subject := viper.GetString("nats.cms-subject"); subject != "" {
		if _, err := events.Listen(conn, subject, CMS_EVENTS.Handle); err != nil {
			log.Errorf("NATS subscribe %s: %s", subject, err.Error())
			utils.LogError(err)
		}
	}
}

// Stores exposes the shared services to request handlers.
func Stores() map[string]interface{} {
	stores := map[string]interface{}{
		"SEARCH_ENGINE":  ENGINE,
		"SECTIONS":       CACHE.Sections(),
		"MEDIA_URL":      CMS.MediaURL(),
		"CMS_CLIENT":     CMS,
		"CMS_EVENTS":     CMS_EVENTS,
		"SUBSCRIPTIONS":  SUBSCRIPTIONS,
		"QUEUE":          events.WorkQueue(QUEUE),
		"WEBHOOK_SECRET": viper.GetString("cms.webhook-secret"),
	}
	if LOGGER != nil {
		stores["SEARCH_LOGGER"] = LOGGER
	}
	return stores
}

func Shutdown() {
	DEBOUNCER.Stop()
	CACHE.Close()
	QUEUE.Close()
	if err := PUBLISHER.Close(); err != nil {
		log.Errorf("publisher close: %s", err.Error())
	}
	if err := SUBSCRIPTIONS.Close(); err != nil {
		log.Errorf("subscriptions close: %s", err.Error())
	}
	if err := SEARCH_CACHE.Close(); err != nil {
		log.Errorf("search cache close: %s", err.Error())
	}
	if DB != nil {
		utils.Must(DB.Close())
	}
}
