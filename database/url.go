package database

import (
	"fmt"
	"strings"
)

// ConstructDatabaseURL appends databaseName to baseURL, keeping any
// query string in place and defaulting sslmode to disable when the URL
// does not choose one. An empty databaseName leaves baseURL untouched
// so a fully-formed DATABASE_URL can be used as-is.
func ConstructDatabaseURL(baseURL, databaseName string) string {
	if databaseName == "" {
		return baseURL
	}

	baseURL = strings.TrimRight(baseURL, "/")

	var databaseURL string
	if base, query, found := strings.Cut(baseURL, "?"); found {
		databaseURL = fmt.Sprintf("%s/%s?%s", base, databaseName, query)
	} else {
		databaseURL = fmt.Sprintf("%s/%s", baseURL, databaseName)
	}

	if !strings.Contains(databaseURL, "sslmode=") {
		separator := "?"
		if strings.Contains(databaseURL, "?") {
			separator = "&"
		}
		databaseURL += separator + "sslmode=disable"
	}

	return databaseURL
}
