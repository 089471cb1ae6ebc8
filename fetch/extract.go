package fetch

import (
	"net/url"
	"regexp"

	"github.com/BeCuong18/PT-YT/model"
)

var (
	videoIDPattern    = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
	watchParamPattern = regexp.MustCompile(`[?&]v=([a-zA-Z0-9_-]{11})`)
	shortLinkPattern  = regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]{11})`)
	shortsPathPattern = regexp.MustCompile(`youtube\.com/shorts/([a-zA-Z0-9_-]{11})`)

	playlistIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{18,40}$`)
	listParamPattern  = regexp.MustCompile(`[?&]list=([a-zA-Z0-9_-]+)`)

	channelIDPattern   = regexp.MustCompile(`^UC[a-zA-Z0-9_-]{22}$`)
	handlePattern      = regexp.MustCompile(`^@[^\s/]+$`)
	channelPathPattern = regexp.MustCompile(`youtube\.com/channel/(UC[a-zA-Z0-9_-]{22})`)
	channelURLPattern  = regexp.MustCompile(`youtube\.com/(?:c/|user/|@)([^/?&\s]+)`)
)

// ExtractVideoID pulls an 11-character video ID out of a watch URL, short
// link or shorts URL. Input that already looks like an ID is returned as is,
// anything unrecognized is passed through verbatim and left for the details
// endpoint to reject.
func ExtractVideoID(input string) string {
	if videoIDPattern.MatchString(input) {
		return input
	}
	for _, pattern := range []*regexp.Regexp{watchParamPattern, shortLinkPattern, shortsPathPattern} {
		if m := pattern.FindStringSubmatch(input); m != nil {
			return m[1]
		}
	}

	return input
}

// ExtractPlaylistID works like ExtractVideoID for playlist references,
// matching an ID-shaped token or a list= query parameter.
func ExtractPlaylistID(input string) string {
	if playlistIDPattern.MatchString(input) {
		return input
	}
	if m := listParamPattern.FindStringSubmatch(input); m != nil {
		return m[1]
	}

	return input
}

// ExtractChannelIdentifier classifies a channel reference as a canonical
// channel ID, a handle that still needs resolving, or an unknown string that
// is passed through for a best-effort name lookup.
func ExtractChannelIdentifier(input string) model.ChannelIdentifier {
	if channelIDPattern.MatchString(input) {
		return model.ChannelIdentifier{Kind: model.ChannelKindID, Value: input}
	}
	if handlePattern.MatchString(input) {
		return model.ChannelIdentifier{Kind: model.ChannelKindHandle, Value: input}
	}
	if m := channelPathPattern.FindStringSubmatch(input); m != nil {
		return model.ChannelIdentifier{Kind: model.ChannelKindID, Value: m[1]}
	}
	if m := channelURLPattern.FindStringSubmatch(input); m != nil {
		value, err := url.PathUnescape(m[1])
		if err != nil {
			// malformed percent-encoding, keep the raw segment
			value = m[1]
		}
		return model.ChannelIdentifier{Kind: model.ChannelKindHandle, Value: value}
	}

	return model.ChannelIdentifier{Kind: model.ChannelKindUnknown, Value: input}
}
