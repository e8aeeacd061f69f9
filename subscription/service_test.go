package subscription

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"

	"github.com/lexcounsel/site-backend/cms"
	"github.com/lexcounsel/site-backend/consts"
	"github.com/lexcounsel/site-backend/events"
)

type fakeStore struct {
	subscribed  map[string]bool
	checks      int
	created     []string
	createErr   error
	checkErr    error
	createdDate time.Time
}

func (f *fakeStore) CheckSubscribed(ctx context.Context, email string) (bool, error) {
	f.checks++
	if f.checkErr != nil {
		return false, f.checkErr
	}
	return f.subscribed[email], nil
}

func (f *fakeStore) CreateSubscription(ctx context.Context, email string, date time.Time) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, email)
	f.createdDate = date
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type ServiceSuite struct {
	suite.Suite
	store     *fakeStore
	publisher *recordingPublisher
	service   *Service
}

func (suite *ServiceSuite) SetupTest() {
	suite.store = &fakeStore{subscribed: map[string]bool{"known@example.com": true}}
	suite.publisher = new(recordingPublisher)
	suite.service = NewService(suite.store, suite.publisher, nil)
	suite.service.now = func() time.Time { return time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC) }
}

func (suite *ServiceSuite) TearDownTest() {
	suite.Require().Nil(suite.service.Close())
}

func TestService(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (suite *ServiceSuite) TestValidateEmail() {
	r := suite.Require()
	r.Nil(ValidateEmail("a@b.co"))
	r.Nil(ValidateEmail(" name.surname@firm.example.com "))
	r.Equal(ErrEmailRequired, ValidateEmail(""))
	r.Equal(ErrEmailRequired, ValidateEmail("   "))
	r.Equal(ErrInvalidEmail, ValidateEmail("plainaddress"))
	r.Equal(ErrInvalidEmail, ValidateEmail("a@b"))
	r.Equal(ErrInvalidEmail, ValidateEmail("a b@c.com"))
	r.Equal(ErrInvalidEmail, ValidateEmail("a@@b.com"))
}

func (suite *ServiceSuite) TestSubscribeNew() {
	r := suite.Require()
	res, err := suite.service.Subscribe(context.Background(), " New@Example.com")
	r.Nil(err)
	r.Equal(consts.SUBSCRIPTION_STATUS_SUBSCRIBED, res.Status)
	r.Equal("New@Example.com", res.Email)
	r.Equal([]string{"New@Example.com"}, suite.store.created)
	r.Equal(2026, suite.store.createdDate.Year())

	r.Len(suite.publisher.events, 1)
	r.Equal(consts.EVENT_SUBSCRIPTION_CREATED, suite.publisher.events[0].Type)

	ok, err := suite.service.Check(context.Background(), "new@example.com")
	r.Nil(err)
	r.True(ok)
	r.Equal(1, suite.store.checks)
}

func (suite *ServiceSuite) TestSubscribeKnown() {
	r := suite.Require()
	res, err := suite.service.Subscribe(context.Background(), "known@example.com")
	r.Nil(err)
	r.Equal(consts.SUBSCRIPTION_STATUS_ALREADY_SUBSCRIBED, res.Status)
	r.Empty(suite.store.created)
	r.Empty(suite.publisher.events)
}

func (suite *ServiceSuite) TestAddressSentAsTyped() {
	r := suite.Require()
	suite.store.subscribed["Partner@Firm.com"] = true

	res, err := suite.service.Subscribe(context.Background(), " Partner@Firm.com ")
	r.Nil(err)
	r.Equal(consts.SUBSCRIPTION_STATUS_ALREADY_SUBSCRIBED, res.Status)
	r.Equal("Partner@Firm.com", res.Email)
	r.Empty(suite.store.created)
}

func (suite *ServiceSuite) TestSubscribeUniqueViolation() {
	r := suite.Require()
	suite.store.createErr = cms.ErrAlreadySubscribed

	res, err := suite.service.Subscribe(context.Background(), "race@example.com")
	r.Nil(err)
	r.Equal(consts.SUBSCRIPTION_STATUS_ALREADY_SUBSCRIBED, res.Status)
	r.Empty(suite.publisher.events)
}

func (suite *ServiceSuite) TestSubscribeFailure() {
	r := suite.Require()
	suite.store.createErr = errors.New("Failed to subscribe user")

	res, err := suite.service.Subscribe(context.Background(), "x@example.com")
	r.Nil(res)
	r.NotNil(err)

	suite.store.checkErr = errors.New("Failed to check subscription")
	_, err = suite.service.Subscribe(context.Background(), "y@example.com")
	r.NotNil(err)
}

func (suite *ServiceSuite) TestSubscribeInvalid() {
	r := suite.Require()
	_, err := suite.service.Subscribe(context.Background(), "not-an-email")
	r.Equal(ErrInvalidEmail, err)
	r.Equal(0, suite.store.checks)
}

func (suite *ServiceSuite) TestCheckIsCached() {
	r := suite.Require()
	for i := 0; i < 3; i++ {
		ok, err := suite.service.Check(context.Background(), "known@example.com")
		r.Nil(err)
		r.True(ok)
	}
	r.Equal(1, suite.store.checks)

	ok, err := suite.service.Check(context.Background(), "KNOWN@example.com")
	r.Nil(err)
	r.True(ok)
	r.Equal(1, suite.store.checks)

	ok, err = suite.service.Check(context.Background(), "other@example.com")
	r.Nil(err)
	r.False(ok)
	r.Equal(2, suite.store.checks)
}

func (suite *ServiceSuite) TestEventGoesThroughQueue() {
	r := suite.Require()
	q := events.NewTaskQueue(10)
	service := NewService(suite.store, suite.publisher, q)
	defer service.Close()

	_, err := service.Subscribe(context.Background(), "queued@example.com")
	r.Nil(err)
	q.Close()

	suite.publisher.mu.Lock()
	defer suite.publisher.mu.Unlock()
	r.Len(suite.publisher.events, 1)
}
