package entry

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var durationRe = regexp.MustCompile(`^(?:(\d+)h)?(?:(\d+)m)?$`)

// ParsePause parses a pause length into minutes.
// Supported formats: "30", "30m", "1h", "1h15m". Zero is allowed.
func ParsePause(s string) (int, error) {
	s = strings.ReplaceAll(strings.TrimSpace(strings.ToLower(s)), " ", "")
	if s == "" {
		return 0, nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, ErrNegativePause
		}
		return n, nil
	}

	m := durationRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid pause %q (expected e.g. 30, 30m, 1h, 1h15m)", s)
	}

	hours, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	return hours*60 + mins, nil
}
