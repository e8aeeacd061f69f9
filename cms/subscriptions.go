package cms

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var ErrAlreadySubscribed = errors.New("Already subscribed")

const subscriptionsEndpoint = "subscriptions"

func (c *Client) CheckSubscribed(ctx context.Context, email string) (bool, error) {
	params := url.Values{}
	params.Set("filters[email][$eq]", email)

	var resp subscriptionsResponse
	if err := c.get(ctx, subscriptionsEndpoint, params, &resp); err != nil {
		return false, errors.Wrap(err, "Failed to check subscription")
	}
	return len(resp.Data) > 0, nil
}

// CreateSubscription stores a new subscriber. A uniqueness violation on the
// email is reported as ErrAlreadySubscribed.
func (c *Client) CreateSubscription(ctx context.Context, email string, date time.Time) error {
	payload := subscriptionRequest{
		Data: subscriptionData{
			Email: email,
			Date:  date.UTC().Format(time.RFC3339Nano),
		},
	}
	err := c.post(ctx, subscriptionsEndpoint, payload, nil)
	if err == nil {
		return nil
	}
	if se, ok := errors.Cause(err).(*StatusError); ok &&
		strings.Contains(strings.ToLower(se.Message), "unique") {
		return ErrAlreadySubscribed
	}
	return errors.Wrap(err, "Failed to subscribe user")
}
