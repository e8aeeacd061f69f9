package api

import (
	"context"
	"net/http"

	log "github.com/Sirupsen/logrus"
	"github.com/pkg/errors"
	"gopkg.in/gin-gonic/gin.v1"

	"github.com/lexcounsel/site-backend/consts"
	"github.com/lexcounsel/site-backend/subscription"
)

type Subscriber interface {
	Subscribe(ctx context.Context, email string) (*subscription.Result, error)
	Check(ctx context.Context, email string) (bool, error)
}

var subscriptionMessages = map[string]string{
	consts.SUBSCRIPTION_STATUS_SUBSCRIBED:         "Subscription successful!",
	consts.SUBSCRIPTION_STATUS_ALREADY_SUBSCRIBED: "You are already subscribed!",
}

var (
	errSubscriptionFailed = errors.New("There was an error during subscription.")
	errCheckFailed        = errors.New("Failed to check subscription. Please try again.")
)

func SubscribeHandler(c *gin.Context) {
	var r SubscribeRequest
	if c.Bind(&r) != nil {
		return
	}

	res, err := c.MustGet("SUBSCRIPTIONS").(Subscriber).Subscribe(c.Request.Context(), r.Email)
	if err != nil {
		abortSubscription(c, err, errSubscriptionFailed)
		return
	}

	c.JSON(http.StatusOK, SubscriptionResponse{
		Status:  res.Status,
		Email:   res.Email,
		Message: subscriptionMessages[res.Status],
	})
}

func CheckSubscriptionHandler(c *gin.Context) {
	var r CheckSubscriptionRequest
	if c.Bind(&r) != nil {
		return
	}

	ok, err := c.MustGet("SUBSCRIPTIONS").(Subscriber).Check(c.Request.Context(), r.Email)
	if err != nil {
		abortSubscription(c, err, errCheckFailed)
		return
	}

	c.JSON(http.StatusOK, CheckSubscriptionResponse{Email: r.Email, Subscribed: ok})
}

// Invalid input is reported against the email field so the form can show it inline.
func abortSubscription(c *gin.Context, err error, public error) {
	if err == subscription.ErrEmailRequired || err == subscription.ErrInvalidEmail {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": "error",
			"errors": map[string]string{"email": err.Error()},
		})
		c.Abort()
		return
	}

	log.Errorf("subscription: %s", err.Error())
	NewBadGatewayError(public).Abort(c)
}
