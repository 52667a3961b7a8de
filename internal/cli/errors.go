package cli

import (
	"fmt"
	"sort"
	"strings"
)

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.id)
}

func errNotFound(kind, id string) error {
	return notFoundError{kind: kind, id: id}
}

type validationError struct {
	fields map[string]string
}

func (e validationError) Error() string {
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.fields[k]))
	}
	return "invalid application: " + strings.Join(parts, "; ")
}

func errValidation(fields map[string]string) error {
	return validationError{fields: fields}
}

type confirmRequiredError struct {
	action string
}

func (e confirmRequiredError) Error() string {
	return fmt.Sprintf("%s is destructive; pass --yes to confirm", e.action)
}

func errConfirmRequired(action string) error {
	return confirmRequiredError{action: action}
}
