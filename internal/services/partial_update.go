package services

import (
	"fmt"
	"strings"

	"github.com/shelfshare/shelfshare-backend/internal/utils"
)

// UpdateField is one candidate column for a partial UPDATE. Fields
// with Set == false are skipped entirely.
type UpdateField struct {
	Column string
	Value  interface{}
	Set    bool
}

// BuildPartialUpdate turns the present fields into a SET-clause
// fragment like "rating = $1, review_text = $2" plus the matching
// bound values. Positional indexes start at 1 and follow the order of
// the present fields, so the caller binds any WHERE parameters
// starting at len(values)+1.
func BuildPartialUpdate(fields []UpdateField) (string, []interface{}, error) {
	var assignments []string
	var values []interface{}

	for _, field := range fields {
		if !field.Set {
			continue
		}
		values = append(values, field.Value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", field.Column, len(values)))
	}

	if len(values) == 0 {
		return "", nil, utils.BadRequest("no fields to update")
	}

	return strings.Join(assignments, ", "), values, nil
}
