package storage

import (
	"testing"

	"github.com/cuongbtq/jobportal-be/internal/api/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestSearchJobsQuery(t *testing.T) {
	tests := []struct {
		name            string
		filter          domain.JobSearchFilter
		wantPredicates  []string
		wantNoPredicate []string
		wantArgs        []interface{}
	}{
		{
			name:   "empty filter matches all active jobs",
			filter: domain.JobSearchFilter{},
			wantNoPredicate: []string{
				"title ILIKE", "location ILIKE", "job_type =", "category =",
				"max_salary >=", "min_salary <=",
			},
			wantArgs: []interface{}{domain.JobStatusActive},
		},
		{
			name:           "title substring match",
			filter:         domain.JobSearchFilter{Title: "engineer"},
			wantPredicates: []string{"title ILIKE $2"},
			wantArgs:       []interface{}{domain.JobStatusActive, "%engineer%"},
		},
		{
			name:           "location substring match",
			filter:         domain.JobSearchFilter{Location: "New York"},
			wantPredicates: []string{"location ILIKE $2"},
			wantArgs:       []interface{}{domain.JobStatusActive, "%New York%"},
		},
		{
			name:           "exact job type and category",
			filter:         domain.JobSearchFilter{JobType: "FULL_TIME", Category: "IT"},
			wantPredicates: []string{"job_type = $2", "category = $3"},
			wantArgs:       []interface{}{domain.JobStatusActive, "FULL_TIME", "IT"},
		},
		{
			name:   "salary bounds are a range overlap test",
			filter: domain.JobSearchFilter{MinSalary: decPtr(100000), MaxSalary: decPtr(150000)},
			wantPredicates: []string{
				"max_salary >= $2",
				"min_salary <= $3",
			},
			wantArgs: []interface{}{
				domain.JobStatusActive,
				decimal.NewFromInt(100000),
				decimal.NewFromInt(150000),
			},
		},
		{
			name:           "requested minimum only",
			filter:         domain.JobSearchFilter{MinSalary: decPtr(120000)},
			wantPredicates: []string{"max_salary >= $2"},
			wantArgs:       []interface{}{domain.JobStatusActive, decimal.NewFromInt(120000)},
		},
		{
			name: "all filters combined keep positional args in order",
			filter: domain.JobSearchFilter{
				Title:     "dev",
				Location:  "remote",
				JobType:   "CONTRACT",
				Category:  "IT",
				MinSalary: decPtr(50000),
				MaxSalary: decPtr(90000),
			},
			wantPredicates: []string{
				"title ILIKE $2",
				"location ILIKE $3",
				"job_type = $4",
				"category = $5",
				"max_salary >= $6",
				"min_salary <= $7",
			},
			wantArgs: []interface{}{
				domain.JobStatusActive,
				"%dev%",
				"%remote%",
				"CONTRACT",
				"IT",
				decimal.NewFromInt(50000),
				decimal.NewFromInt(90000),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := searchJobsQuery(tt.filter)

			// The search is always pinned to ACTIVE status.
			assert.Contains(t, query, "WHERE status = $1")

			for _, p := range tt.wantPredicates {
				assert.Contains(t, query, p)
			}
			for _, p := range tt.wantNoPredicate {
				assert.NotContains(t, query, p)
			}

			require.Len(t, args, len(tt.wantArgs))
			for i, want := range tt.wantArgs {
				wantDec, ok := want.(decimal.Decimal)
				if !ok {
					assert.Equal(t, want, args[i])
					continue
				}
				gotDec, ok := args[i].(decimal.Decimal)
				require.True(t, ok, "arg %d should be a decimal", i)
				assert.True(t, wantDec.Equal(gotDec))
			}
		})
	}
}
