package window

import (
	"net/url"
	"strconv"
	"strings"
)

// debugFromQuery reads the debug flag from a location search string.
func debugFromQuery(search string) bool {
	q, err := url.ParseQuery(strings.TrimPrefix(search, "?"))
	if err != nil {
		return false
	}
	on, err := strconv.ParseBool(q.Get("debug"))
	return err == nil && on
}
