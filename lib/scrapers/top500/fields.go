package top500

// systemFields maps the row labels of a system details page to
// canonical field names. Labels not present here are skipped with a
// diagnostic so unseen future fields don't abort a scrape.
var systemFields = map[string]string{
	"Site:":                      "site_name",
	"System URL:":                "system_url",
	"Manufacturer:":              "manufacturer",
	"Cores:":                     "cores",
	"Memory:":                    "memory",
	"Processor:":                 "processor",
	"Interconnect:":              "interconnect",
	"Linpack Performance (Rmax)": "rmax",
	"Theoretical Peak (Rpeak)":   "rpeak",
	"Nmax":                       "nmax",
	"Nhalf":                      "nhalf",
	"HPCG [TFlop/s]":             "hpcg",
	"Power:":                     "power",
	"Operating System:":          "os",
	"Compiler:":                  "compiler",
	"Math Library:":              "math",
	"MPI:":                       "mpi",
}

// siteFields is the analogous map for the details table on a site page.
var siteFields = map[string]string{
	"URL":     "site_url",
	"City":    "city",
	"Country": "country",
	"Segment": "segment",
}

// numericFields classifies which canonical fields hold numbers and of
// which kind. Their raw values may carry units or thousands separators
// and go through NumberFormat.Normalize.
var numericFields = map[string]Kind{
	"cores":  Integer,
	"memory": Integer,
	"nmax":   Integer,
	"nhalf":  Integer,
	"rmax":   Float,
	"rpeak":  Float,
	"power":  Float,
	"hpcg":   Float,
}

// columns is the fixed output column order every record serializes in.
// Known before any row is parsed; null fields render as empty strings.
var columns = []string{
	"site_name",
	"system_url",
	"manufacturer",
	"cores",
	"memory",
	"processor",
	"interconnect",
	"rmax",
	"rpeak",
	"nmax",
	"nhalf",
	"hpcg",
	"power",
	"os",
	"compiler",
	"math",
	"mpi",
	"gpu",
	"country",
	"site_id",
	"system_id",
	"name",
	"site_url",
	"city",
	"segment",
	"year",
	"month",
	"rank",
}
