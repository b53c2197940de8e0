package top500

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// The first list was published on June 1993, new editions follow
// every June and November.
const FirstYear = 1993

type Edition struct {
	Year  int
	Month int
}

func NewEdition(year, month int) (Edition, error) {
	e := Edition{Year: year, Month: month}
	if err := e.validate(time.Now()); err != nil {
		return Edition{}, err
	}
	return e, nil
}

func (e Edition) validate(now time.Time) error {
	if e.Month != 6 && e.Month != 11 {
		return InvalidEditionError{Year: e.Year, Month: e.Month}
	}
	if e.Year < FirstYear || e.Year > now.Year() {
		return InvalidEditionError{Year: e.Year, Month: e.Month}
	}
	return nil
}

// Next returns the chronologically following edition: June rolls over
// to November of the same year, November to June of the next.
func (e Edition) Next() Edition {
	if e.Month == 6 {
		return Edition{Year: e.Year, Month: 11}
	}
	return Edition{Year: e.Year + 1, Month: 6}
}

func (e Edition) Before(other Edition) bool {
	if e.Year != other.Year {
		return e.Year < other.Year
	}
	return e.Month < other.Month
}

func (e Edition) String() string {
	return fmt.Sprintf("%04d/%02d", e.Year, e.Month)
}

// Latest computes the most recently published edition as of `now`,
// assuming all lists to date have been published on time.
func Latest(now time.Time) Edition {
	switch {
	case now.Month() < time.June:
		return Edition{Year: now.Year() - 1, Month: 11}
	case now.Month() < time.November:
		return Edition{Year: now.Year(), Month: 6}
	default:
		return Edition{Year: now.Year(), Month: 11}
	}
}

var listUrlRegex = regexp.MustCompile(`/list/(\d{4})/(\d{2})`)

// EditionFromURL identifies which edition of the list a page belongs
// to, based on its URL.
func EditionFromURL(url string) (Edition, error) {
	groups := listUrlRegex.FindStringSubmatch(url)
	if groups == nil {
		return Edition{}, fmt.Errorf("%w: %q does not match a list URL", ErrMalformedReference, url)
	}
	year, _ := strconv.Atoi(groups[1])
	month, _ := strconv.Atoi(groups[2])
	return NewEdition(year, month)
}
