package commands

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"
	"top500-scraper/lib/configuration"
	"top500-scraper/lib/restyutil"
	"top500-scraper/lib/scrapers/top500"

	"github.com/spf13/cobra"
)

type Config struct {
	BaseUrl        string `json:"base_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

var (
	startYear    int
	startMonth   int
	endYear      int
	endMonth     int
	entryCount   *int
	allowPartial *bool
	outFile      *string
)

// the edition range applies to several subcommands, each registers the
// same flags into the same variables
func addEditionFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&startYear, "start-year", top500.FirstYear, "Year of the first edition to scrape.")
	cmd.Flags().IntVar(&startMonth, "start-month", 6, "Month of the first edition to scrape (6 or 11).")
	cmd.Flags().IntVar(&endYear, "end-year", 0, "Year of the last edition to scrape (default: latest published).")
	cmd.Flags().IntVar(&endMonth, "end-month", 0, "Month of the last edition to scrape (6 or 11).")
}

func init() {
	addEditionFlags(scrapeCmd)
	entryCount = scrapeCmd.Flags().Int("count", 500, "Entries to scrape per edition, a positive multiple of 100.")
	allowPartial = scrapeCmd.Flags().Bool("allow-partial", false, "Permit a count that isn't a multiple of 100.")
	outFile = scrapeCmd.Flags().StringP("out", "o", "top500.csv", "The CSV file to write entries to.")
	rootCmd.AddCommand(scrapeCmd)
}

func editionRange() (top500.Edition, top500.Edition) {
	start, err := top500.NewEdition(startYear, startMonth)
	if err != nil {
		fatal("invalid start edition", err)
	}

	end := top500.Latest(time.Now())
	if endYear != 0 || endMonth != 0 {
		end, err = top500.NewEdition(endYear, endMonth)
		if err != nil {
			fatal("invalid end edition", err)
		}
	}
	if end.Before(start) {
		fatal("invalid edition range", fmt.Errorf("end edition %s precedes start edition %s", end, start))
	}
	return start, end
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--start-year <y>] [--end-year <y>] [--count <n>] [-o <path/to/output.csv>]",
	Short: "Scrapes a range of list editions and writes the entries to a CSV file.",
	Run: func(cmd *cobra.Command, args []string) {
		start, end := editionRange()

		if *entryCount <= 0 {
			fatal("invalid count", fmt.Errorf("%d is not positive", *entryCount))
		}
		if *entryCount%100 != 0 && !*allowPartial {
			fatal("invalid count", fmt.Errorf("%d is not a multiple of 100, pass --allow-partial to scrape anyway", *entryCount))
		}
		pages := (*entryCount + 99) / 100

		cfg, err := configuration.ReadConfig[Config]("top500.json5")
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			fatal("failed to read config", err)
		}

		file, err := os.Create(*outFile)
		if err != nil {
			fatal("failed to create output file", err)
		}
		defer file.Close()

		out := csv.NewWriter(file)
		if err := out.Write(top500.Header()); err != nil {
			fatal("failed to write csv header", err)
		}

		if verbose {
			top500.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/top500"))
		}
		scraper := top500.NewScraper(top500.Options{
			BaseURL: cfg.BaseUrl,
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
			OnEntry: func(entry top500.Entry) {
				if err := out.Write(entry.Values()); err != nil {
					fatal("failed to write csv row", err)
				}
			},
		})

		t1 := time.Now()
		for edition := start; !end.Before(edition); edition = edition.Next() {
			scrapeEdition(cmd, scraper, edition, pages)
			out.Flush()
		}
		t2 := time.Now()

		if err := out.Error(); err != nil {
			fatal("failed to flush csv output", err)
		}
		slog.Info(
			"scraping done",
			"entries", len(scraper.Entries()),
			"out", *outFile,
			"seconds", t2.Sub(t1).Seconds(),
		)
	},
}

// scrapeEdition fetches every requested page of one edition. A fetch
// failure skips the rest of the edition rather than aborting the run.
func scrapeEdition(cmd *cobra.Command, scraper *top500.Scraper, edition top500.Edition, pages int) {
	for page := 1; page <= pages; page++ {
		limit := 100
		if page == pages && *entryCount%100 != 0 {
			limit = *entryCount % 100
		}

		slog.Info("downloading", "url", top500.ListURL(edition, page))
		entries, err := scraper.ScrapeListPage(cmd.Context(), edition, page, limit)
		if err != nil {
			slog.Error(
				"skipping rest of edition",
				"edition", edition.String(),
				"page", page,
				"err", err,
			)
			return
		}
		slog.Info(
			"scraped list page",
			"edition", edition.String(),
			"page", page,
			"entries", len(entries),
		)
	}
}
