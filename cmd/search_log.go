package cmd

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/Sirupsen/logrus"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lexcounsel/site-backend/search"
	"github.com/lexcounsel/site-backend/utils"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "log commands",
	Run:   logFn,
}

var queriesCmd = &cobra.Command{
	Use:   "queries",
	Short: "Get logged search queries",
	Run:   queriesFn,
}

var (
	logDBUrl string
	logFrom  string
	logTo    string
)

func init() {
	RootCmd.AddCommand(logCmd)

	logCmd.PersistentFlags().StringVar(&logDBUrl, "db", "", "URL of the search log DB.")
	viper.BindPFlag("search.log-url", logCmd.PersistentFlags().Lookup("db"))

	queriesCmd.Flags().StringVar(&logFrom, "from", "", "start date, 2006-01-02 (default 30 days ago)")
	queriesCmd.Flags().StringVar(&logTo, "to", "", "end date, exclusive, 2006-01-02 (default tomorrow)")

	logCmd.AddCommand(queriesCmd)
}

func logFn(cmd *cobra.Command, args []string) {
	fmt.Println("Use one of the subcommands.")
}

func initLogger() (*search.SearchLogger, *sql.DB) {
	url := viper.GetString("search.log-url")
	if url == "" {
		log.Fatal("search log DB url is missing, use --db or search.log-url")
	}
	log.Info("Setting up connection to search log DB")
	db, err := sql.Open("postgres", url)
	utils.Must(err)
	utils.Must(db.Ping())
	return search.MakeSearchLogger(db), db
}

func parseDay(s string, def time.Time) time.Time {
	if s == "" {
		return def
	}
	t, err := time.Parse("2006-01-02", s)
	utils.Must(err)
	return t
}

func printCsv(records [][]string) {
	w := csv.NewWriter(os.Stdout)
	w.WriteAll(records)
	if err := w.Error(); err != nil {
		log.Fatalln("error writing csv:", err)
	}
}

func queriesFn(cmd *cobra.Command, args []string) {
	logger, db := initLogger()
	defer db.Close()

	today := time.Now().UTC().Truncate(24 * time.Hour)
	from := parseDay(logFrom, today.AddDate(0, 0, -30))
	to := parseDay(logTo, today.AddDate(0, 0, 1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	logs, err := logger.Logs(ctx, from, to)
	utils.Must(err)

	records := [][]string{{
		"#", "RequestId", "Created", "Query", "Language", "Locale", "Kind",
		"Total", "Page", "Items", "Results", "DurationMs", "Error"}}
	for i, sl := range logs {
		ids := make([]string, len(sl.ResultIDs))
		for j, id := range sl.ResultIDs {
			ids[j] = fmt.Sprintf("%d", id)
		}
		records = append(records, []string{
			fmt.Sprintf("%d", i+1),
			sl.RequestID.String,
			sl.Created.Format("2006-01-02 15:04:05"),
			sl.Query,
			sl.Language,
			sl.Locale,
			sl.Kind,
			fmt.Sprintf("%d", sl.Total),
			fmt.Sprintf("%d", sl.Page),
			fmt.Sprintf("%d", sl.Items),
			strings.Join(ids, ","),
			fmt.Sprintf("%d", sl.Duration.Milliseconds()),
			sl.Error.String,
		})
	}
	printCsv(records)
	log.Infof("Found %d queries.", len(logs))
}
