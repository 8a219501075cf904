// Package store holds the Postgres repositories behind the usecase ports.
package store

import "strings"

// orderBy maps an ordering query parameter ("name", "-created_at") onto an
// ORDER BY clause. Fields outside the allow-list fall back to def.
func orderBy(param string, allowed map[string]string, def string) string {
	field := strings.TrimPrefix(param, "-")
	col, ok := allowed[field]
	if field == "" || !ok {
		return def
	}
	if strings.HasPrefix(param, "-") {
		return col + " DESC"
	}
	return col + " ASC"
}
