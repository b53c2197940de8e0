package main

import (
	"context"
	"log/slog"
	"top500-scraper/cmd/top500-cli/commands"
	"top500-scraper/lib/telemetry"
)

func main() {
	ctx := context.Background()
	tel, err := telemetry.SetupFromEnv(ctx, "top500-cli")
	if err != nil {
		slog.Warn("failed to setup telemetry", "err", err)
	}
	defer tel.Shutdown(context.Background())
	telemetry.InstrumentPerfStats(ctx)
	commands.ExecuteContext(ctx)
}
