package blizzard

import (
	"fmt"
	"net/url"
)

func slugPath(format string, segments ...string) string {
	escaped := make([]interface{}, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}

	return fmt.Sprintf(format, escaped...)
}

func idPath(format string, ID int64) string {
	return fmt.Sprintf(format, ID)
}
