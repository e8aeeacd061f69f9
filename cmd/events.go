package cmd

import (
	"os"
	"os/signal"
	"syscall"

	log "github.com/Sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lexcounsel/site-backend/consts"
	"github.com/lexcounsel/site-backend/events"
	"github.com/lexcounsel/site-backend/utils"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Re-sync the CMS snapshot on CMS events",
	Run:   eventsFn,
}

func init() {
	RootCmd.AddCommand(eventsCmd)
}

func eventsFn(cmd *cobra.Command, args []string) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	conn, err := events.Connect(viper.GetString("nats.url"),
		viper.GetString("nats.cluster-id"),
		viper.GetString("nats.client-id")+"-snapshot")
	utils.Must(err)
	defer conn.Close()

	queue := events.NewTaskQueue(100)
	defer queue.Close()
	debouncer := events.NewDebouncer()
	defer debouncer.Stop()

	delay := viper.GetDuration("cms.webhook-debounce")
	if delay <= 0 {
		delay = consts.DEFAULT_WEBHOOK_DEBOUNCE
	}

	// Any section change re-syncs the whole snapshot, so all events share one key.
	handler := func(e events.Event) {
		if !events.IsEntryEvent(e.Type) {
			return
		}
		debouncer.Schedule("snapshot", delay, func() {
			queue.Enqueue(events.Task{Name: "cms snapshot sync", F: syncSnapshot})
		})
	}

	sub, err := events.Listen(conn, viper.GetString("nats.cms-subject"), handler)
	utils.Must(err)
	defer sub.Close()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down events listener")
}
