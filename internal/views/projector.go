package views

import (
	"strings"

	"github.com/SamMcCormick61/ultidiff/internal/models"
)

// Project post-processes one materialized view by change-type filter and
// substring search. It is independent of alignment: rows are kept or dropped,
// never reordered or rewritten.
//
// An empty filter list means no type restriction. Separator and context rows
// always survive the type filter to preserve visual continuity; a non-empty
// search term is then matched case-insensitively against each non-separator
// row's plain text.
func Project(view []models.DisplayLine, filters []models.ChangeType, searchTerm string) []models.DisplayLine {
	showAll := len(filters) == 0
	active := make(map[models.LineRole]bool)
	for _, f := range filters {
		for _, role := range f.Roles() {
			active[role] = true
		}
	}

	searchLower := strings.ToLower(searchTerm)

	result := make([]models.DisplayLine, 0, len(view))
	for _, row := range view {
		isSep := row.Role == models.RoleSeparator
		isContext := row.Role == models.RoleContext

		show := showAll || isSep || isContext || active[row.Role]
		if show && searchLower != "" && !isSep {
			show = strings.Contains(strings.ToLower(row.Text), searchLower)
		}
		if show {
			result = append(result, row)
		}
	}
	return result
}

// IsEmptyProjection reports whether a projected view holds nothing to
// display: no rows, or separators only. Callers substitute a "no matches"
// placeholder rather than rendering nothing.
func IsEmptyProjection(view []models.DisplayLine) bool {
	for _, row := range view {
		if row.Role != models.RoleSeparator {
			return false
		}
	}
	return true
}
