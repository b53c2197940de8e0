package commands

import (
	"os"
	"top500-scraper/lib/scrapers/top500"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	addEditionFlags(editionsCmd)
	rootCmd.AddCommand(editionsCmd)
}

var editionsCmd = &cobra.Command{
	Use:   "editions [--start-year <y>] [--end-year <y>]",
	Short: "Lists the first-page URL of every edition in a range.",
	Run: func(cmd *cobra.Command, args []string) {
		start, end := editionRange()

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"edition", "url"})
		for edition := start; !end.Before(edition); edition = edition.Next() {
			t.AppendRow(table.Row{edition.String(), top500.ListURL(edition, 1)})
		}
		t.Render()
	},
}
