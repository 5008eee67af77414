package game

import (
	"log/slog"
)

// flushTelemetry refreshes HUD stats and, every log interval, logs and writes frame stats.
func (g *Game) flushTelemetry() {
	// HUD frame time refreshes twice per window
	window := int64(g.config().Telemetry.FrameWindow)
	if g.frame%max(window/2, 1) == 0 {
		g.hudStats = g.frames.Stats()
	}

	interval := g.config().Telemetry.LogInterval
	if interval <= 0 || g.elapsed-g.lastFlush < interval {
		return
	}
	g.lastFlush = g.elapsed

	stats := g.frames.Stats()
	if g.logStats {
		stats.LogStats()
	}
	if err := g.outputManager.WriteFrames(stats, g.frames.TotalFrames(), g.elapsed); err != nil {
		slog.Error("failed to write frames", "error", err)
	}
}
