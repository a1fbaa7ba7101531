package utils

import (
	"fmt"
	"strings"
)

type sqlFilterBuilder struct {
	where   []string
	orderBy []string
}

// NewSqlFilterBuilder builds WHERE and ORDER BY clauses from list filters. Column names are
// never taken from user input, only values are, and those are returned as query arguments.
func NewSqlFilterBuilder() *sqlFilterBuilder {
	return &sqlFilterBuilder{}
}

// AddFilter adds a LIKE condition on column and returns the matching query argument.
func (s *sqlFilterBuilder) AddFilter(column string, filter Filter) string {
	s.where = append(s.where, fmt.Sprintf("%s LIKE ?", column))

	switch filter.Mode {
	case FilterModeStartWith:
		return filter.Value + "%"
	case FilterModeEndWith:
		return "%" + filter.Value
	default:
		return "%" + filter.Value + "%"
	}
}

func (s *sqlFilterBuilder) AddSortBy(column string, direction SortByDirection) {
	if direction == SortByDirectionDesc {
		s.orderBy = append(s.orderBy, column+" DESC")
		return
	}

	s.orderBy = append(s.orderBy, column+" ASC")
}

func (s *sqlFilterBuilder) Build() string {
	var sql []string
	if len(s.where) > 0 {
		sql = append(sql, "WHERE "+strings.Join(s.where, " AND "))
	}

	if len(s.orderBy) > 0 {
		sql = append(sql, "ORDER BY "+strings.Join(s.orderBy, ", "))
	}

	return strings.Join(sql, " ")
}
