package top500

import (
	"fmt"
	"strconv"
	"strings"
)

// IDFromLink extracts the trailing numeric path segment of a URL.
// Assuming a link of the form "https://some.thing/some/path/1234",
// this returns 1234.
func IDFromLink(href string) (int, error) {
	trimmed := strings.TrimRight(href, "/")
	last := trimmed[strings.LastIndex(trimmed, "/")+1:]
	id, err := strconv.Atoi(last)
	if err != nil {
		return 0, fmt.Errorf("%w: no trailing id in %q", ErrMalformedReference, href)
	}
	return id, nil
}
