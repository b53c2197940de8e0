package top500

import (
	"bytes"
	"context"
	"net/http"
	"time"
	"top500-scraper/lib/restyutil"
	"top500-scraper/lib/telemetry"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

type Options struct {
	// BaseURL overrides the live site, mainly for tests.
	BaseURL string
	Timeout time.Duration
	// Format is the numeric separator convention, defaults to EnUS.
	Format NumberFormat
	// OnEntry, when set, is invoked synchronously with each entry as
	// its row completes. This is how callers stream results to disk
	// without buffering a whole run.
	OnEntry func(Entry)
}

// Scraper extracts listing entries from the TOP500 site, caching
// system and site details by id for the lifetime of the scraper so a
// machine appearing in many editions is fetched once. A Scraper owns
// its caches exclusively and is not safe for concurrent use.
type Scraper struct {
	http    *resty.Client
	format  NumberFormat
	onEntry func(Entry)
	sites   map[int]SiteDetail
	systems map[int]SystemDetail
	entries []Entry
}

func NewScraper(opts Options) *Scraper {
	if opts.BaseURL == "" {
		opts.BaseURL = BaseURL
	}
	if opts.Timeout == 0 {
		opts.Timeout = time.Second * 30
	}
	if opts.Format == (NumberFormat{}) {
		opts.Format = EnUS
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseURL)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(opts.Timeout)

	telemetry.InstrumentResty(client, "scrapers/top500/http")
	restyutil.InstrumentClient(client, restyInstrumentOutput)

	return &Scraper{
		http:    client,
		format:  opts.Format,
		onEntry: opts.OnEntry,
		sites:   map[int]SiteDetail{},
		systems: map[int]SystemDetail{},
	}
}

func (s *Scraper) fetchDocument(ctx context.Context, path string) (*goquery.Document, error) {
	res, err := s.http.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return nil, &FetchError{URL: path, Err: err}
	}
	if res.StatusCode() != http.StatusOK {
		return nil, &FetchError{URL: res.Request.URL, StatusCode: res.StatusCode()}
	}
	return goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
}

// GetSiteDetails finds details about a site, checking the cache first
// and scraping its details page on a miss. A cache hit never touches
// the network.
func (s *Scraper) GetSiteDetails(ctx context.Context, siteID int) (SiteDetail, error) {
	if site, ok := s.sites[siteID]; ok {
		return site, nil
	}
	site, err := s.scrapeSitePage(ctx, siteID)
	if err != nil {
		return SiteDetail{}, err
	}
	s.sites[siteID] = site
	return site, nil
}

// GetSystemDetails is the system-side equivalent of GetSiteDetails.
func (s *Scraper) GetSystemDetails(ctx context.Context, systemID int) (SystemDetail, error) {
	if system, ok := s.systems[systemID]; ok {
		return system, nil
	}
	system, err := s.scrapeSystemPage(ctx, systemID)
	if err != nil {
		return SystemDetail{}, err
	}
	s.systems[systemID] = system
	return system, nil
}

func (s *Scraper) addEntry(entry Entry) {
	s.entries = append(s.entries, entry)
	if s.onEntry != nil {
		s.onEntry(entry)
	}
}

// Entries returns every entry accumulated across all scraped pages, in
// the order they were parsed.
func (s *Scraper) Entries() []Entry {
	return s.entries
}
