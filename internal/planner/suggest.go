package planner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eswar0113/travel/internal/models"
)

const (
	maxSuggestions = 5

	// Templates with an unknown duration are assumed to take two hours.
	defaultDurationMinutes = 120
)

// Suggestion is one ranked activity recommendation with a human-readable
// justification.
type Suggestion struct {
	ID                uint    `json:"id"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Category          string  `json:"category"`
	EstimatedCost     float64 `json:"estimated_cost"`
	EstimatedDuration int     `json:"estimated_duration"`
	ImageURL          string  `json:"image_url"`
	Popularity        int     `json:"popularity"`
	Reason            string  `json:"reason"`
}

// SuggestActivities filters candidate templates against the caller's free
// time and remaining budget, drops anything already planned on the stop
// (name match, case-insensitive), and returns at most five suggestions.
// Candidates must arrive ordered by popularity descending; the catalog
// query does that, and the order is preserved here.
func SuggestActivities(candidates []models.ActivityTemplate, planned []models.Activity, availableHours, budgetRemaining float64) []Suggestion {
	plannedNames := make(map[string]struct{}, len(planned))
	for _, a := range planned {
		plannedNames[strings.ToLower(a.Name)] = struct{}{}
	}

	suggestions := make([]Suggestion, 0, maxSuggestions)
	for _, t := range candidates {
		if durationHours(t) > availableHours {
			continue
		}
		if t.EstimatedCost > budgetRemaining {
			continue
		}
		if _, ok := plannedNames[strings.ToLower(t.Name)]; ok {
			continue
		}

		suggestions = append(suggestions, Suggestion{
			ID:                t.ID,
			Name:              t.Name,
			Description:       t.Description,
			Category:          t.Category,
			EstimatedCost:     t.EstimatedCost,
			EstimatedDuration: t.EstimatedDuration,
			ImageURL:          t.ImageURL,
			Popularity:        t.Popularity,
			Reason:            suggestReason(t, availableHours, budgetRemaining),
		})
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return suggestions
}

// suggestReason joins up to three independent clauses: time consumed,
// cost against remaining budget, and a popularity tier.
func suggestReason(t models.ActivityTemplate, availableHours, budgetRemaining float64) string {
	clauses := []string{
		fmt.Sprintf("Takes %.1fh of your %sh free time", durationHours(t), trimFloat(availableHours)),
	}

	if t.EstimatedCost == 0 {
		clauses = append(clauses, "Free activity!")
	} else {
		clauses = append(clauses, fmt.Sprintf("Costs $%s (You have $%.0f left)", trimFloat(t.EstimatedCost), budgetRemaining))
	}

	if t.Popularity > 800 {
		clauses = append(clauses, "Very popular!")
	} else if t.Popularity > 500 {
		clauses = append(clauses, "Popular choice")
	}

	return strings.Join(clauses, " • ")
}

func durationHours(t models.ActivityTemplate) float64 {
	minutes := t.EstimatedDuration
	if minutes == 0 {
		minutes = defaultDurationMinutes
	}
	return float64(minutes) / 60
}

// trimFloat renders a float with only the digits it needs: 1.5 -> "1.5",
// 30 -> "30".
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
