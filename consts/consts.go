package consts

import "time"

const (
	// Locales
	LANG_ENGLISH = "en"
	LANG_ARABIC  = "ar"

	// Search result categories
	CAT_SERVICES = "Services"
	CAT_TEAM     = "Team"
	CAT_ABOUT    = "About"
	CAT_BLOG     = "Blog"
	CAT_CONTACT  = "Contact"

	// CMS sections
	SECTION_TEAM    = "team"
	SECTION_HERO    = "hero"
	SECTION_CLIENTS = "clients"

	// Search kinds (logs, metrics)
	SEARCH_KIND_SUGGEST = "suggest"
	SEARCH_KIND_FULL    = "search"

	// Subscription statuses
	SUBSCRIPTION_STATUS_SUBSCRIBED         = "subscribed"
	SUBSCRIPTION_STATUS_ALREADY_SUBSCRIBED = "already_subscribed"

	// Events
	EVENT_SUBSCRIPTION_CREATED = "subscription.created"
	EVENT_CMS_ENTRY_CREATE     = "entry.create"
	EVENT_CMS_ENTRY_UPDATE     = "entry.update"
	EVENT_CMS_ENTRY_DELETE     = "entry.delete"
	EVENT_CMS_ENTRY_PUBLISH    = "entry.publish"
	EVENT_CMS_ENTRY_UNPUBLISH  = "entry.unpublish"

	// Route of the search results page on the website
	SEARCH_RESULTS_PATH = "/search-results"

	MAX_SUGGESTIONS        = 5
	DEFAULT_ITEMS_PER_PAGE = 5

	DEFAULT_SUGGEST_LATENCY  = 300 * time.Millisecond
	DEFAULT_SEARCH_LATENCY   = 500 * time.Millisecond
	DEFAULT_CMS_STALENESS    = 5 * time.Minute
	DEFAULT_WEBHOOK_DEBOUNCE = 500 * time.Millisecond
	SUBSCRIPTION_CHECK_TTL   = 5 * time.Minute

	// Fallback image for testimonials without a client photo
	DEFAULT_CLIENT_IMAGE = "/Man.png"
)

var ALL_LANGS = []string{LANG_ENGLISH, LANG_ARABIC}

// Fallback order when content is missing in the requested language
var I18N_LANG_ORDER = map[string][]string{
	LANG_ENGLISH: {LANG_ENGLISH, LANG_ARABIC},
	LANG_ARABIC:  {LANG_ARABIC, LANG_ENGLISH},
}

var ALL_SECTIONS = []string{SECTION_TEAM, SECTION_HERO, SECTION_CLIENTS}

// Allowed page sizes on the search results page
var ITEMS_PER_PAGE = []int{5, 10, 20}

// Maps a CMS content type (as reported by CMS webhooks) to our section name
var CMS_MODEL_SECTION = map[string]string{
	"team-section":   SECTION_TEAM,
	"hero-section":   SECTION_HERO,
	"client-section": SECTION_CLIENTS,
}

// User facing messages when a section could not be loaded
var SECTION_ERRORS = map[string]string{
	SECTION_TEAM:    "Failed to load team members",
	SECTION_HERO:    "Failed to load hero section",
	SECTION_CLIENTS: "Failed to load client testimonials",
}
