package top500

// SystemDetail holds the fields scraped once from a system's details
// page. Scraped lazily on the first reference to a system id and
// reused for every later appearance, a system can show up in many
// editions. Numeric fields are pointers: nil means the source didn't
// provide a usable value.
type SystemDetail struct {
	SystemID     int
	SiteName     string
	SystemURL    string
	Manufacturer string
	Processor    string
	Interconnect string
	OS           string
	Compiler     string
	Math         string
	MPI          string
	Cores        *int64
	Memory       *int64
	Nmax         *int64
	Nhalf        *int64
	Rmax         *float64
	Rpeak        *float64
	HPCG         *float64
	Power        *float64
}

// SiteDetail holds the fields scraped once from a site's details page.
type SiteDetail struct {
	SiteID  int
	Name    string
	URL     string
	City    string
	Country string
	Segment string
}

// Entry is one ranked row of one edition's listing, merged with the
// details of its system and hosting site. Cores/Rmax/Rpeak come from
// the listing row itself and are required; Power is frequently blank
// in the source and stays nil when absent or malformed.
type Entry struct {
	Rank         int
	Edition      Edition
	Name         string
	GPU          string
	Manufacturer string
	Site         SiteDetail
	System       SystemDetail
	Cores        int64
	Rmax         float64
	Rpeak        float64
	Power        *float64
}

func (d *SystemDetail) setText(field, value string) {
	switch field {
	case "site_name":
		d.SiteName = value
	case "system_url":
		d.SystemURL = value
	case "manufacturer":
		d.Manufacturer = value
	case "processor":
		d.Processor = value
	case "interconnect":
		d.Interconnect = value
	case "os":
		d.OS = value
	case "compiler":
		d.Compiler = value
	case "math":
		d.Math = value
	case "mpi":
		d.MPI = value
	}
}

// setNumber stores a normalized numeric value. A nil value (rejected
// minus sign) leaves the field null.
func (d *SystemDetail) setNumber(field string, value any) {
	switch v := value.(type) {
	case int64:
		switch field {
		case "cores":
			d.Cores = &v
		case "memory":
			d.Memory = &v
		case "nmax":
			d.Nmax = &v
		case "nhalf":
			d.Nhalf = &v
		}
	case float64:
		switch field {
		case "rmax":
			d.Rmax = &v
		case "rpeak":
			d.Rpeak = &v
		case "hpcg":
			d.HPCG = &v
		case "power":
			d.Power = &v
		}
	}
}

func (d *SiteDetail) setText(field, value string) {
	switch field {
	case "site_url":
		d.URL = value
	case "city":
		d.City = value
	case "country":
		d.Country = value
	case "segment":
		d.Segment = value
	}
}
