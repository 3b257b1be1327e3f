package repository

import "strings"

// likeEscaper escapes the LIKE wildcards so a search term matches as a
// literal substring.  '!' is used as the escape character because it needs
// no extra quoting in either MySQL or SQLite.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// containsPattern builds the LIKE pattern for a case-insensitive substring
// match against LOWER(column) ... ESCAPE '!'.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}
