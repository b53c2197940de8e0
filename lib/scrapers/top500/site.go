package top500

import (
	"context"
	"log/slog"
	"top500-scraper/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// scrapeSitePage downloads and parses a site's details page. The
// site's display name comes from the first non-empty h1; the details
// table is the first of three on the page (the other two list the
// site's systems and its rank history, both derivable from the rest
// of the data).
func (s *Scraper) scrapeSitePage(ctx context.Context, siteID int) (SiteDetail, error) {
	ctx, span := tracer.Start(ctx, "scrapeSitePage")
	defer span.End()
	span.SetAttributes(attribute.Int("site_id", siteID))

	doc, err := s.fetchDocument(ctx, sitePath(siteID))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch site page")
		return SiteDetail{}, err
	}

	detail := SiteDetail{SiteID: siteID}
	doc.Find("h1").EachWithBreak(func(_ int, heading *goquery.Selection) bool {
		name := htmlutil.StrippedText(heading)
		if name == "" {
			return true
		}
		detail.Name = name
		return false
	})

	doc.Find("table").First().Find("tr").Each(func(_ int, row *goquery.Selection) {
		header := row.Find("th").First()
		if header.Length() == 0 {
			return
		}

		label := htmlutil.StrippedText(header)
		field, known := siteFields[label]
		if !known {
			slog.Warn("ignoring unknown site detail", "label", label, "site_id", siteID)
			return
		}

		detail.setText(field, htmlutil.StrippedText(row.Find("td").First()))
	})

	return detail, nil
}
