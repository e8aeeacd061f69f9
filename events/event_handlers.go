package events

import (
	"context"
	"encoding/json"
	"time"

	log "github.com/Sirupsen/logrus"

	"github.com/lexcounsel/site-backend/consts"
)

type SectionRefresher interface {
	RefreshSection(ctx context.Context, section string) error
}

// CMSEventHandler turns CMS entry change notifications into a debounced
// refresh of the affected section.
type CMSEventHandler struct {
	refresher SectionRefresher
	debouncer *Debouncer
	queue     WorkQueue
	delay     time.Duration
	timeout   time.Duration
}

func NewCMSEventHandler(refresher SectionRefresher, debouncer *Debouncer, queue WorkQueue, delay time.Duration) *CMSEventHandler {
	return &CMSEventHandler{
		refresher: refresher,
		debouncer: debouncer,
		queue:     queue,
		delay:     delay,
		timeout:   30 * time.Second,
	}
}

var entryEvents = map[string]bool{
	consts.EVENT_CMS_ENTRY_CREATE:    true,
	consts.EVENT_CMS_ENTRY_UPDATE:    true,
	consts.EVENT_CMS_ENTRY_DELETE:    true,
	consts.EVENT_CMS_ENTRY_PUBLISH:   true,
	consts.EVENT_CMS_ENTRY_UNPUBLISH: true,
}

func IsEntryEvent(eventType string) bool {
	return entryEvents[eventType]
}

// OnEntryChange schedules a refresh of the section backed by model.
// Cached entries are only replaced once the CMS answers, so a failed
// refresh leaves the previous copy in place.
// It returns the section, or "" if model is not one of ours.
func (h *CMSEventHandler) OnEntryChange(model string) string {
	section, ok := consts.CMS_MODEL_SECTION[model]
	if !ok {
		log.Debugf("CMSEventHandler: ignoring model %s", model)
		return ""
	}

	h.debouncer.Schedule(section, h.delay, func() {
		h.queue.Enqueue(Task{
			Name: "refresh " + section,
			F: func() error {
				ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
				defer cancel()
				return h.refresher.RefreshSection(ctx, section)
			},
		})
	})
	return section
}

// Handle is the NATS counterpart of the CMS webhook.
func (h *CMSEventHandler) Handle(e Event) {
	if !IsEntryEvent(e.Type) {
		log.Debugf("CMSEventHandler: ignoring event %s", e.Type)
		return
	}

	var payload struct {
		Model string `json:"model"`
	}
	if err := json.Unmarshal(e.Payload, &payload); err != nil {
		log.Errorf("CMSEventHandler json.Unmarshal: %s", err.Error())
		return
	}
	h.OnEntryChange(payload.Model)
}
