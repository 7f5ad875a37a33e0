package app

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/tradexhq/passport-cli/internal/logger"
	"github.com/tradexhq/passport-cli/internal/service/auth"
)

//nolint:gochecknoglobals // A single buffered reader must own stdin across prompts.
var stdinReader = bufio.NewReader(os.Stdin)

// promptLine prints a label and reads one trimmed line from stdin.
func promptLine(label string) string {
	fmt.Fprint(os.Stderr, label)

	line, _ := stdinReader.ReadString('\n')

	return strings.TrimSpace(line)
}

// promptRequired keeps prompting until the member enters a non-empty value.
func promptRequired(ctx context.Context, label string) string {
	for {
		if value := promptLine(label); value != "" {
			return value
		}

		logger.Warn(ctx, "A value is required")
	}
}

// announceDispatch surfaces the dispatch confirmation and, when the
// environment hands the code back in-band, the code itself.
func announceDispatch(ctx context.Context, result *auth.DispatchResult) {
	logger.Info(ctx, result.Tip)

	if result.InlineCode != "" {
		logger.Infof(ctx, "Verification code returned in-band: %s", result.InlineCode)
	}
}

// renderCountdown shows the resend countdown as a progress bar on stderr.
func renderCountdown(countdown *auth.Countdown) {
	total := int(countdown.Remaining() / time.Second)
	if total <= 0 {
		return
	}

	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Resend available in"),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	countdown.OnTick(func(remaining time.Duration) {
		//nolint:errcheck // Progress rendering, a failed redraw is not critical.
		_ = bar.Set(total - int(remaining/time.Second))
	})

	countdown.OnDone(func() {
		//nolint:errcheck // Progress rendering, a failed redraw is not critical.
		_ = bar.Finish()
	})
}
