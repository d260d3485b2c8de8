package services

import (
	"strings"
	"time"

	"github.com/sankalpa008/lost-and-found/dto"
	"github.com/sankalpa008/lost-and-found/models"
)

// FilterItems applies the optional criteria to items, AND-combined.
// Pure: no I/O, no resampling of now, input order preserved. With no
// criteria the input comes back unchanged.
func FilterItems(items []models.Item, filter dto.ItemFilter, now time.Time) []models.Item {
	if filter.Empty() {
		return items
	}

	query := strings.ToLower(filter.Search)

	var maxDays int
	if filter.PostedWithin != nil {
		if days, ok := filter.PostedWithin.MaxDays(); ok {
			maxDays = days
		} else {
			filter.PostedWithin = nil
		}
	}

	matched := make([]models.Item, 0, len(items))
	for _, item := range items {
		if query != "" && !matchesSearch(item, query) {
			continue
		}
		if filter.Category != nil && item.Category != *filter.Category {
			continue
		}
		if filter.Status != nil && item.Status != *filter.Status {
			continue
		}
		if filter.Resolved != nil && item.IsResolved != *filter.Resolved {
			continue
		}
		if filter.PostedWithin != nil && elapsedDays(item.CreatedAt, now) > maxDays {
			continue
		}
		matched = append(matched, item)
	}
	return matched
}

// matchesSearch reports whether any of title, description, or location
// contains the lowercased query.
func matchesSearch(item models.Item, query string) bool {
	return strings.Contains(strings.ToLower(item.Title), query) ||
		strings.Contains(strings.ToLower(item.Description), query) ||
		strings.Contains(strings.ToLower(item.Location), query)
}

// elapsedDays counts whole days between creation and the sampled now.
// Anything created less than 24h ago, including clock-skewed future
// timestamps, is day zero.
func elapsedDays(createdAt, now time.Time) int {
	elapsed := now.Sub(createdAt)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed.Hours() / 24)
}
