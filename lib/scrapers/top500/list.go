package top500

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"top500-scraper/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// a listing data row carries exactly these cells:
// rank, site, system, cores, rmax, rpeak, power.
// header rows use th instead of td and don't count.
const listColumns = 7

// ScrapeListPage fetches and parses one page of one edition's listing,
// stopping after `limit` data rows. Rows whose required cells fail to
// parse are logged and skipped; a failed detail-page fetch aborts the
// whole page since every later row would hit the same transport.
func (s *Scraper) ScrapeListPage(ctx context.Context, edition Edition, page, limit int) ([]Entry, error) {
	ctx, span := tracer.Start(ctx, "ScrapeListPage")
	defer span.End()
	span.SetAttributes(
		attribute.String("edition", edition.String()),
		attribute.Int("page", page),
	)

	doc, err := s.fetchDocument(ctx, listPath(edition, page))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch list page")
		return nil, err
	}

	var entries []Entry
	var pageErr error
	count := 0

	doc.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() != listColumns {
			return true
		}
		if count >= limit {
			slog.Info(
				"partial scrape of list page",
				"edition", edition.String(),
				"page", page,
				"limit", limit,
			)
			return false
		}
		count++

		entry, err := s.scrapeListRow(ctx, edition, cells)
		if err != nil {
			var fetchErr *FetchError
			if errors.As(err, &fetchErr) {
				pageErr = err
				return false
			}
			slog.Warn(
				"skipping list row",
				"edition", edition.String(),
				"page", page,
				"err", err,
			)
			return true
		}

		s.addEntry(entry)
		entries = append(entries, entry)
		return true
	})

	if pageErr != nil {
		span.RecordError(pageErr)
		span.SetStatus(codes.Error, "failed to resolve a detail page")
		return nil, pageErr
	}
	return entries, nil
}

func (s *Scraper) scrapeListRow(ctx context.Context, edition Edition, cells *goquery.Selection) (Entry, error) {
	entry := Entry{Edition: edition}

	rank, err := strconv.Atoi(strings.TrimSpace(cells.Eq(0).Text()))
	if err != nil {
		return Entry{}, fmt.Errorf("rank: %w", err)
	}
	entry.Rank = rank

	if err := s.resolveSiteColumn(ctx, &entry, cells.Eq(1)); err != nil {
		return Entry{}, err
	}
	if err := s.resolveSystemColumn(ctx, &entry, cells.Eq(2)); err != nil {
		return Entry{}, err
	}

	cores, err := s.format.ParseInt(htmlutil.StrippedText(cells.Eq(3)))
	if err != nil {
		return Entry{}, fmt.Errorf("cores: %w", err)
	}
	entry.Cores = cores

	rmax, err := s.format.ParseFloat(htmlutil.StrippedText(cells.Eq(4)))
	if err != nil {
		return Entry{}, fmt.Errorf("rmax: %w", err)
	}
	entry.Rmax = rmax

	rpeak, err := s.format.ParseFloat(htmlutil.StrippedText(cells.Eq(5)))
	if err != nil {
		return Entry{}, fmt.Errorf("rpeak: %w", err)
	}
	entry.Rpeak = rpeak

	// several systems don't provide details about power, and the cell
	// is occasionally malformed; neither aborts the row
	if power, err := s.format.ParseFloat(htmlutil.StrippedText(cells.Eq(6))); err == nil {
		entry.Power = &power
	}

	return entry, nil
}

// resolveSiteColumn handles a cell of the form
//
//	<td><a href="/site/SITE_ID">SITE_NAME</a><br>COUNTRY</td>
//
// Only the id matters here, the rest of a site's details come from its
// cached details page.
func (s *Scraper) resolveSiteColumn(ctx context.Context, entry *Entry, cell *goquery.Selection) error {
	link := cell.Find("a").First()
	if link.Length() == 0 {
		return fmt.Errorf("%w: site column without a link", ErrMalformedReference)
	}
	siteID, err := IDFromLink(link.AttrOr("href", ""))
	if err != nil {
		return err
	}

	site, err := s.GetSiteDetails(ctx, siteID)
	if err != nil {
		return err
	}
	entry.Site = site
	return nil
}

// resolveSystemColumn handles a cell of the form
//
//	<td><a href="/system/SYSTEM_ID">
//	    SYSTEM_NAME, PROCESSOR, INTERCONNECT, GPU
//	</a><br/>MANUFACTURER</td>
//
// The link text varies wildly across systems, so its comma-separated
// components are reconciled against the processor and interconnect
// from the system's details page to isolate the name and coprocessor.
func (s *Scraper) resolveSystemColumn(ctx context.Context, entry *Entry, cell *goquery.Selection) error {
	link := cell.Find("a").First()
	if link.Length() == 0 {
		return fmt.Errorf("%w: system column without a link", ErrMalformedReference)
	}
	systemID, err := IDFromLink(link.AttrOr("href", ""))
	if err != nil {
		return err
	}

	detail, err := s.GetSystemDetails(ctx, systemID)
	if err != nil {
		return err
	}
	entry.System = detail

	var parts []string
	for _, part := range strings.Split(htmlutil.StrippedText(link), ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	entry.Name, entry.GPU = Reconcile(parts, KnownParts{
		Processor:    detail.Processor,
		Interconnect: detail.Interconnect,
	})

	// with the link gone, the remaining cell text is the manufacturer
	link.Remove()
	entry.Manufacturer = strings.TrimSpace(cell.Text())
	if entry.Manufacturer == "" {
		entry.Manufacturer = detail.Manufacturer
	}
	return nil
}
