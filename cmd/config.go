package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var outFile string

const template = `# Site backend generated config template
[server]
bind-address=":8080"
mode="debug"  # GIN mode. Either debug, release or test
log-level="info"
rollbar-token=""
rollbar-environment="development"
allowed-origins=[]
subscribe-rate=0.2  # newsletter subscriptions per second per client IP
subscribe-burst=3

[cms]
url="http://localhost:1337/api"
media-url=""  # defaults to the origin of url
token=""
timeout="10s"
retries=2  # retries after the first attempt
retry-delay="500ms"
assets=""  # snapshot directory used when the CMS is down, empty to disable
staleness="5m"
refresh-interval="5m"
webhook-debounce="500ms"
webhook-secret=""

[search]
suggest-latency="300ms"
search-latency="500ms"
cross-script-match=true
cache-ttl="10m"
log-url=""  # postgres://localhost/site?sslmode=disable to log searches

[nats]
url=""  # nats://localhost:4222, empty to disable events
cluster-id="test-cluster"
client-id="site-backend"
subject="site.events"
cms-subject="cms.events"
`

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate configuration file template",
	Long:  "Write default configuration to given file or stdout",
	Run:   configFn,
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.Flags().StringVarP(&outFile, "file", "f", "", "Path to generated config file (default is config.toml)")
}

func configFn(cmd *cobra.Command, args []string) {
	if outFile == "" && len(args) > 0 {
		outFile = args[0]
	}
	if outFile == "" {
		fmt.Print(template)
	} else {
		if err := os.WriteFile(outFile, []byte(template), 0644); err != nil {
			panic(err)
		}
	}
}
