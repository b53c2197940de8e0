package top500

import "fmt"

const BaseURL = "https://www.top500.org"

func listPath(e Edition, page int) string {
	return fmt.Sprintf("/list/%04d/%02d/?page=%d", e.Year, e.Month, page)
}

func systemPath(systemID int) string {
	return fmt.Sprintf("/system/%d", systemID)
}

func sitePath(siteID int) string {
	return fmt.Sprintf("/site/%d", siteID)
}

// ListURL returns the absolute URL of one page of an edition's listing.
func ListURL(e Edition, page int) string {
	return BaseURL + listPath(e, page)
}
