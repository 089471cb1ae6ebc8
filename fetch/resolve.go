package fetch

import (
	"context"

	"github.com/BeCuong18/PT-YT/model"
	"golang.org/x/exp/slog"
)

// ResolveChannelIDs turns mixed channel references (IDs, handles, URLs) into
// canonical channel IDs. A reference that cannot be resolved is dropped so
// that one bad handle does not block the others; the result may therefore be
// shorter than the input.
func (f *Fetcher) ResolveChannelIDs(ctx context.Context, inputs []string) []string {
	resolved := make([]string, 0, len(inputs))
	for _, input := range inputs {
		identifier := ExtractChannelIdentifier(input)
		if identifier.Kind == model.ChannelKindID {
			resolved = append(resolved, identifier.Value)
			continue
		}

		channelID, err := f.api.FindChannelID(ctx, identifier.Value)
		if err != nil {
			f.logger.Error("failed to resolve channel", err, slog.String("input", input))
			continue
		}
		if channelID == "" {
			f.logger.Info("channel lookup returned nothing", slog.String("input", input))
			continue
		}
		resolved = append(resolved, channelID)
	}

	return resolved
}
