package top500

import (
	"top500-scraper/lib/restyutil"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/top500")
var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput enables request/response dumping for
// scrapers constructed afterwards.
func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyInstrumentOutput = out
}
