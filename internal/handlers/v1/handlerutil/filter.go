package handlerutil

import "github.com/Purvi1411/expense-tracker/internal/filter"

// FilterQuery holds the transaction filter query parameters. Embed it in an
// operation input to accept them.
type FilterQuery struct {
	Search         string `query:"search" doc:"Case-insensitive substring of the description"`
	Kind           string `query:"kind" doc:"income, expense or all"`
	Category       string `query:"category" doc:"Exact category, or all"`
	StartDate      string `query:"startDate" doc:"YYYY-MM-DD or RFC 3339, inclusive from the start of the day"`
	EndDate        string `query:"endDate" doc:"YYYY-MM-DD or RFC 3339, inclusive through the end of the day"`
	PeriodShortcut string `query:"periodShortcut" doc:"current limits results to this month and overrides the date range"`
}

func (q FilterQuery) Params() filter.Params {
	return filter.Params{
		Search:         q.Search,
		Kind:           q.Kind,
		Category:       q.Category,
		StartDate:      q.StartDate,
		EndDate:        q.EndDate,
		PeriodShortcut: q.PeriodShortcut,
	}
}
