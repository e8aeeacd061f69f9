package api

import (
	"crypto/subtle"
	"net/http"
	"strings"

	log "github.com/Sirupsen/logrus"
	"github.com/pkg/errors"
	"gopkg.in/gin-gonic/gin.v1"

	"github.com/lexcounsel/site-backend/events"
)

type EntryChangeHandler interface {
	OnEntryChange(model string) string
}

// CMSWebhookHandler receives the CMS entry lifecycle webhooks and schedules
// a refresh of the affected section.
func CMSWebhookHandler(c *gin.Context) {
	if !webhookAuthorized(c) {
		NewHttpError(http.StatusUnauthorized, errors.New("invalid webhook token"), gin.ErrorTypePublic).Abort(c)
		return
	}

	var r WebhookRequest
	if c.BindJSON(&r) != nil {
		return
	}

	if !events.IsEntryEvent(r.Event) {
		c.JSON(http.StatusOK, WebhookResponse{Status: "ignored"})
		return
	}

	section := c.MustGet("CMS_EVENTS").(EntryChangeHandler).OnEntryChange(r.Model)
	if section == "" {
		c.JSON(http.StatusOK, WebhookResponse{Status: "ignored"})
		return
	}

	log.Infof("CMS %s on %s, refreshing %s", r.Event, r.Model, section)
	c.JSON(http.StatusAccepted, WebhookResponse{Status: "scheduled", Section: section})
}

func webhookAuthorized(c *gin.Context) bool {
	v, ok := c.Get("WEBHOOK_SECRET")
	if !ok {
		return true
	}
	secret := v.(string)
	if secret == "" {
		return true
	}
	token := strings.TrimPrefix(c.Request.Header.Get("Authorization"), "Bearer ")
	return subtle.ConstantTimeCompare([]byte(token), []byte(secret)) == 1
}
