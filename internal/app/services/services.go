// Package services contains the application's business logic: the progress
// engine, the course resolver and list view-models, and authentication.
// Everything here is computed from the read-only dataset stores; apart from
// the refresh-token table owned by the auth service there is no mutable
// state, so the services are safe for concurrent request handling.
package services

import "strings"

// CreditsPerClass is the fixed credit weight of one class. Credit totals are
// converted to class counts for display by integer division.
const CreditsPerClass = 3

// matchesSearch reports whether term is a case-insensitive substring of the
// space-joined record fields. An empty term matches everything.
func matchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	combined := strings.ToLower(strings.Join(fields, " "))
	return strings.Contains(combined, strings.ToLower(term))
}
