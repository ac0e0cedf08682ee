// Package validation checks each wizard form and reports field -> message errors.
//
// Validators never short-circuit: every failing field is reported so the form can show all
// messages at once. An empty Errors means the step may proceed.
package validation

import (
	"fmt"
	"sort"
	"strings"
)

type Errors map[string]string

func (e Errors) Add(field, message string) {
	e[field] = message
}

func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

func (e Errors) OK() bool {
	return len(e) == 0
}

// Fields returns the failing field names in a stable order.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// String joins the errors as "field: message; ..." for logs.
func (e Errors) String() string {
	msgs := make([]string, 0, len(e))
	for _, field := range e.Fields() {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return strings.Join(msgs, "; ")
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
