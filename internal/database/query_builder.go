package database

import (
	"fmt"
	"strings"
)

const entryColumns = "id, sprint_id, date, category_id, title, details, created_at"

// EntryQuery incrementally builds SELECT statements over entries.
type EntryQuery struct {
	filters []string
	args    []interface{}
	orderBy string
}

func NewEntryQuery() *EntryQuery {
	return &EntryQuery{}
}

// Where adds a filter clause with its arguments.
func (q *EntryQuery) Where(filter string, args ...interface{}) *EntryQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

// WhereSprint restricts the query to a single sprint.
func (q *EntryQuery) WhereSprint(sprintID string) *EntryQuery {
	return q.Where("sprint_id = ?", sprintID)
}

// OrderBy sets the ORDER BY clause.
func (q *EntryQuery) OrderBy(orderBy string) *EntryQuery {
	q.orderBy = orderBy
	return q
}

// Build assembles the final query string and arguments.
func (q *EntryQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM entries", entryColumns)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	if q.orderBy != "" {
		query += " ORDER BY " + q.orderBy
	}
	return query, q.args
}
