package recommend

import (
	"regexp"
	"strconv"
	"strings"
)

// PlayerSpan is an inclusive player count range parsed from a "best with" value.
// A single count parses to a span with Min == Max.
type PlayerSpan struct {
	Min int
	Max int
}

// Contains reports whether n players fall within the span
func (s PlayerSpan) Contains(n int) bool {
	return n >= s.Min && n <= s.Max
}

// bestWithToken matches "4", "3-4" and "3–4" (en dash)
var bestWithToken = regexp.MustCompile(`(\d+)\s*(?:[-–]\s*(\d+))?`)

// ParseBestWith splits a "best with" value such as "2, 4–5" into spans.
// Text around the numbers is ignored; an empty or numberless value yields no spans.
func ParseBestWith(value string) []PlayerSpan {
	var spans []PlayerSpan
	for _, part := range strings.Split(value, ",") {
		for _, match := range bestWithToken.FindAllStringSubmatch(part, -1) {
			lo, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			hi := lo
			if match[2] != "" {
				if hi, err = strconv.Atoi(match[2]); err != nil {
					continue
				}
			}
			if hi < lo {
				lo, hi = hi, lo
			}
			spans = append(spans, PlayerSpan{Min: lo, Max: hi})
		}
	}
	return spans
}
