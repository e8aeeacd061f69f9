package cmd

import (
	"context"
	"fmt"
	"strings"

	log "github.com/Sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lexcounsel/site-backend/search"
	"github.com/lexcounsel/site-backend/utils"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the site content from the command line",
	Args:  cobra.MinimumNArgs(1),
	Run:   searchFn,
}

var (
	searchPage    int
	searchItems   int
	searchSuggest bool
)

func init() {
	RootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVar(&searchPage, "page", 1, "results page")
	searchCmd.Flags().IntVar(&searchItems, "items", 5, "results per page (5, 10 or 20)")
	searchCmd.Flags().BoolVar(&searchSuggest, "suggest", false, "print autocomplete suggestions instead of results")
}

func searchFn(cmd *cobra.Command, args []string) {
	query := strings.Join(args, " ")
	viper.SetDefault("search.cross-script-match", true)
	engine := search.NewEngine(search.EngineOptions{
		Matcher: search.Matcher{CrossScript: viper.GetBool("search.cross-script-match")},
	})
	lang := utils.DetectQueryLanguage(query, "en")

	if searchSuggest {
		suggestions, err := engine.Suggest(context.Background(), query)
		utils.Must(err)
		for _, s := range suggestions {
			fmt.Printf("%d\t%s\t%s\n", s.ID, title(lang, s.Title, s.TitleAr.String), s.ReadMoreURL)
		}
		return
	}

	if !search.ValidItemsPerPage(searchItems) {
		log.Fatalf("items must be one of 5, 10, 20")
	}

	results, err := engine.Search(context.Background(), query)
	utils.Must(err)
	info := search.NewPaginationInfo(len(results), searchPage, searchItems)
	for _, x := range search.Paginate(results, info.CurrentPage, info.ItemsPerPage) {
		fmt.Printf("%d\t[%s]\t%s\t%s\n", x.ID, x.Category, title(lang, x.Title, x.TitleAr.String), x.ReadMoreURL)
	}
	fmt.Printf("Showing %d-%d of %d results (page %d of %d) %s\n",
		info.StartItem, info.EndItem, info.TotalResults, info.CurrentPage, info.TotalPages,
		search.ResultsURL(query, info.CurrentPage, info.ItemsPerPage))
}

func title(lang, en, ar string) string {
	if lang == "ar" && ar != "" {
		return ar
	}
	return en
}
