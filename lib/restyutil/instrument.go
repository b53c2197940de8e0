package restyutil

import (
	"log/slog"
	"strconv"
	"sync/atomic"

	"github.com/go-resty/resty/v2"
)

type InstrumentOutput interface {
	Write(id string, contents string)
}

// InstrumentClient dumps every request/response pair the client sees to
// `output`, one file per exchange. `output` can be nil, in which case
// the function is a no-op. Span creation is left to
// telemetry.InstrumentResty so the two can be stacked.
func InstrumentClient(client *resty.Client, output InstrumentOutput) {
	if output == nil {
		return
	}

	var idcounter uint64
	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		messageId := strconv.FormatUint(atomic.AddUint64(&idcounter, 1), 10)
		output.Write(messageId, formatHttpMessage(res))
		slog.Debug(
			"request completed",
			"method", res.Request.Method,
			"url", res.Request.URL,
			"status", res.StatusCode(),
			"message_id", messageId,
		)
		return nil
	})
	client.OnError(func(req *resty.Request, err error) {
		slog.Error(
			"request failed",
			"method", req.Method,
			"url", req.URL,
			"err", err,
		)
	})
}
