package subscription

import (
	"context"
	"regexp"
	"strings"
	"time"

	log "github.com/Sirupsen/logrus"
	"github.com/jellydator/ttlcache/v2"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/lexcounsel/site-backend/cms"
	"github.com/lexcounsel/site-backend/consts"
	"github.com/lexcounsel/site-backend/events"
)

var (
	ErrEmailRequired = errors.New("Email is required")
	ErrInvalidEmail  = errors.New("Please enter a valid email address")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var subscriptionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "site",
		Name:      "subscriptions_total",
		Help:      "Newsletter subscription attempts by outcome",
	},
	[]string{"status"},
)

// Store is the CMS side of newsletter subscriptions.
type Store interface {
	CheckSubscribed(ctx context.Context, email string) (bool, error)
	CreateSubscription(ctx context.Context, email string, date time.Time) error
}

type Result struct {
	Email  string `json:"email"`
	Status string `json:"status"`
}

type Service struct {
	store     Store
	checks    ttlcache.SimpleCache
	publisher events.Publisher
	queue     events.WorkQueue
	now       func() time.Time
}

func NewService(store Store, publisher events.Publisher, queue events.WorkQueue) *Service {
	checks := ttlcache.NewCache()
	checks.SetTTL(consts.SUBSCRIPTION_CHECK_TTL)
	checks.SkipTTLExtensionOnHit(true)
	checks.SetCacheSizeLimit(10000)

	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &Service{
		store:     store,
		checks:    checks,
		publisher: publisher,
		queue:     queue,
		now:       time.Now,
	}
}

func (s *Service) Close() error {
	return s.checks.Close()
}

// ValidateEmail applies the same rule the subscription form applies inline.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// cacheKey folds case so one person maps to one cache entry. The CMS
// always receives the address as typed.
func cacheKey(email string) string {
	return strings.ToLower(email)
}

// Check tells whether email is subscribed. Answers are cached for a few minutes.
func (s *Service) Check(ctx context.Context, email string) (bool, error) {
	if err := ValidateEmail(email); err != nil {
		return false, err
	}
	email = strings.TrimSpace(email)
	key := cacheKey(email)

	if v, err := s.checks.Get(key); err == nil {
		return v.(bool), nil
	} else if err != ttlcache.ErrNotFound {
		log.Warnf("subscription checks cache: %s", err.Error())
	}

	ok, err := s.store.CheckSubscribed(ctx, email)
	if err != nil {
		return false, err
	}
	if err := s.checks.Set(key, ok); err != nil {
		log.Warnf("subscription checks cache: %s", err.Error())
	}
	return ok, nil
}

// Subscribe adds email to the newsletter. Being subscribed already is not an error.
func (s *Service) Subscribe(ctx context.Context, email string) (*Result, error) {
	if err := ValidateEmail(email); err != nil {
		subscriptionsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}
	email = strings.TrimSpace(email)

	subscribed, err := s.Check(ctx, email)
	if err != nil {
		subscriptionsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	if subscribed {
		subscriptionsTotal.WithLabelValues(consts.SUBSCRIPTION_STATUS_ALREADY_SUBSCRIBED).Inc()
		return &Result{Email: email, Status: consts.SUBSCRIPTION_STATUS_ALREADY_SUBSCRIBED}, nil
	}

	err = s.store.CreateSubscription(ctx, email, s.now())
	if err == cms.ErrAlreadySubscribed {
		s.remember(email)
		subscriptionsTotal.WithLabelValues(consts.SUBSCRIPTION_STATUS_ALREADY_SUBSCRIBED).Inc()
		return &Result{Email: email, Status: consts.SUBSCRIPTION_STATUS_ALREADY_SUBSCRIBED}, nil
	}
	if err != nil {
		subscriptionsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	s.remember(email)
	s.announce(email)
	subscriptionsTotal.WithLabelValues(consts.SUBSCRIPTION_STATUS_SUBSCRIBED).Inc()
	return &Result{Email: email, Status: consts.SUBSCRIPTION_STATUS_SUBSCRIBED}, nil
}

func (s *Service) remember(email string) {
	if err := s.checks.Set(cacheKey(email), true); err != nil {
		log.Warnf("subscription checks cache: %s", err.Error())
	}
}

func (s *Service) announce(email string) {
	e, err := events.NewEvent(consts.EVENT_SUBSCRIPTION_CREATED, map[string]string{"email": email})
	if err != nil {
		log.Errorf("subscription event: %s", err.Error())
		return
	}
	publish := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.publisher.Publish(ctx, e)
	}
	if s.queue == nil {
		if err := publish(); err != nil {
			log.Errorf("subscription event: %s", err.Error())
		}
		return
	}
	s.queue.Enqueue(events.Task{Name: "publish " + e.Type, F: publish})
}
