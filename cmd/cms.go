package cmd

import (
	"context"
	"time"

	log "github.com/Sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lexcounsel/site-backend/cms"
	"github.com/lexcounsel/site-backend/utils"
)

var cmsCmd = &cobra.Command{
	Use:   "cms",
	Short: "Sync sections snapshot from CMS",
	Run:   cmsFn,
}

func init() {
	RootCmd.AddCommand(cmsCmd)
}

func newCMSClient() *cms.Client {
	return cms.NewClient(cms.Options{
		URL:        viper.GetString("cms.url"),
		MediaURL:   viper.GetString("cms.media-url"),
		Token:      viper.GetString("cms.token"),
		Timeout:    viper.GetDuration("cms.timeout"),
		Retries:    uint(viper.GetInt("cms.retries")),
		RetryDelay: viper.GetDuration("cms.retry-delay"),
	})
}

func syncSnapshot() error {
	assets := viper.GetString("cms.assets")
	if assets == "" {
		log.Fatal("cms.assets must be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	clock := time.Now()
	active, err := cms.Sync(ctx, newCMSClient(), assets)
	if err != nil {
		return err
	}
	log.Infof("CMS snapshot synced to %s in %s", active, time.Since(clock))
	return nil
}

func cmsFn(cmd *cobra.Command, args []string) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	utils.Must(syncSnapshot())
}
