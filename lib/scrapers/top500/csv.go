package top500

import (
	"encoding/csv"
	"io"
	"strconv"
)

// Header returns the fixed column order every entry serializes in.
func Header() []string {
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}

// Values renders the entry in Header() order, nulls as empty strings.
func (e Entry) Values() []string {
	return []string{
		e.Site.Name,
		e.System.SystemURL,
		e.Manufacturer,
		strconv.FormatInt(e.Cores, 10),
		formatInt(e.System.Memory),
		e.System.Processor,
		e.System.Interconnect,
		formatFloat(&e.Rmax),
		formatFloat(&e.Rpeak),
		formatInt(e.System.Nmax),
		formatInt(e.System.Nhalf),
		formatFloat(e.System.HPCG),
		formatFloat(e.Power),
		e.System.OS,
		e.System.Compiler,
		e.System.Math,
		e.System.MPI,
		e.GPU,
		e.Site.Country,
		strconv.Itoa(e.Site.SiteID),
		strconv.Itoa(e.System.SystemID),
		e.Name,
		e.Site.URL,
		e.Site.City,
		e.Site.Segment,
		strconv.Itoa(e.Edition.Year),
		strconv.Itoa(e.Edition.Month),
		strconv.Itoa(e.Rank),
	}
}

// WriteCSV writes the header row followed by one row per entry.
func WriteCSV(w io.Writer, entries []Entry) error {
	out := csv.NewWriter(w)
	if err := out.Write(Header()); err != nil {
		return err
	}
	for _, entry := range entries {
		if err := out.Write(entry.Values()); err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}

func formatInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
