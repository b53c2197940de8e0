package top500

import (
	"context"
	"log/slog"
	"top500-scraper/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// scrapeSystemPage downloads and parses a system's details page.
// A sample row from the details table:
//
//	<tr>
//	    <th>Cores:</th>
//	    <td>12,345</td>
//	</tr>
//
// A system page holds two tables, the details themselves and the
// history of ranks; only the first is scraped.
func (s *Scraper) scrapeSystemPage(ctx context.Context, systemID int) (SystemDetail, error) {
	ctx, span := tracer.Start(ctx, "scrapeSystemPage")
	defer span.End()
	span.SetAttributes(attribute.Int("system_id", systemID))

	doc, err := s.fetchDocument(ctx, systemPath(systemID))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch system page")
		return SystemDetail{}, err
	}

	detail := SystemDetail{SystemID: systemID}
	doc.Find("table").First().Find("tr").Each(func(_ int, row *goquery.Selection) {
		header := row.Find("th").First()
		if header.Length() == 0 {
			return
		}
		if _, spansColumns := header.Attr("colspan"); spansColumns {
			// a title/category row, it doesn't carry a value
			return
		}

		label := htmlutil.StrippedText(header)
		field, known := systemFields[label]
		if !known {
			slog.Warn("ignoring unknown system detail", "label", label, "system_id", systemID)
			return
		}

		raw := htmlutil.StrippedText(row.Find("td").First())
		kind, numeric := numericFields[field]
		if !numeric {
			detail.setText(field, raw)
			return
		}

		value := s.format.Normalize(kind, raw)
		if text, ok := value.(string); ok {
			slog.Warn(
				"non-numeric value in numeric system detail",
				"field", field,
				"value", text,
				"system_id", systemID,
			)
			return
		}
		detail.setNumber(field, value)
	})

	return detail, nil
}
