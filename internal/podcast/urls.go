package podcast

import (
	"regexp"
	"strings"
)

var urlPattern = regexp.MustCompile(`https?://[^\s<>"')\]]+`)

// ExtractURLs returns the http(s) URLs found in free-form request text,
// in order of appearance. Duplicates are kept; trailing sentence
// punctuation is trimmed.
func ExtractURLs(request string) []string {
	matches := urlPattern.FindAllString(request, -1)

	var urls []string
	for _, m := range matches {
		m = strings.TrimRight(m, ".,;:!?")
		if m != "" {
			urls = append(urls, m)
		}
	}
	return urls
}

// CountSpeakerLines reports how many lines of a transcript carry one of
// the two speaker labels. The synthesis path does not require this; it
// exists for callers that want to inspect a script before speaking it.
func CountSpeakerLines(script string) int {
	n := 0
	for _, line := range strings.Split(script, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Speaker 1:") || strings.HasPrefix(line, "Speaker 2:") {
			n++
		}
	}
	return n
}
