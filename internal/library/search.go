package library

import "strings"

// Search returns the entries matching query by case-insensitive
// substring on name, description or any tag. Index order is preserved.
func Search(entries []Entry, query string) []Entry {
	q := strings.ToLower(query)

	var matches []Entry
	for _, entry := range entries {
		if matchesEntry(entry, q) {
			matches = append(matches, entry)
		}
	}
	return matches
}

func matchesEntry(entry Entry, q string) bool {
	if strings.Contains(strings.ToLower(entry.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(entry.Description), q) {
		return true
	}
	for _, tag := range entry.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
