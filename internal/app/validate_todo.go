package app

import (
	"strings"

	"veristay/internal/domain"
)

var todoUpdateFields = []string{"title", "description", "completed"}

// ValidateTodoCreate checks a POST /api/todos body.
func ValidateTodoCreate(input any) (domain.TodoInput, error) {
	data, err := asObject(input)
	if err != nil {
		return domain.TodoInput{}, err
	}

	raw := data["title"]
	if !truthy(raw) {
		return domain.TodoInput{}, domain.Invalid("Title is required")
	}
	title, err := todoTitle(raw)
	if err != nil {
		return domain.TodoInput{}, err
	}

	in := domain.TodoInput{Title: title}
	if v, ok := data["description"]; ok {
		if in.Description, err = todoDescription(v); err != nil {
			return domain.TodoInput{}, err
		}
	}
	return in, nil
}

// ValidateTodoUpdate checks a PUT /api/todos/{id} body. Unknown keys reject
// the whole request.
func ValidateTodoUpdate(input any) (domain.TodoPatch, error) {
	data, err := asObject(input)
	if err != nil {
		return domain.TodoPatch{}, err
	}
	if err := requireNonEmpty(data); err != nil {
		return domain.TodoPatch{}, err
	}

	var p domain.TodoPatch
	if v, ok := data["title"]; ok {
		title, err := todoTitle(v)
		if err != nil {
			return domain.TodoPatch{}, err
		}
		p.Title = &title
	}
	if v, ok := data["description"]; ok {
		desc, err := todoDescription(v)
		if err != nil {
			return domain.TodoPatch{}, err
		}
		p.Description = &desc
	}
	if v, ok := data["completed"]; ok {
		done, ok := v.(bool)
		if !ok {
			return domain.TodoPatch{}, domain.Invalid("Completed must be a boolean")
		}
		p.Completed = &done
	}

	if extra := unexpectedFields(data, todoUpdateFields...); len(extra) > 0 {
		return domain.TodoPatch{}, domain.Invalid("Unexpected fields: " + strings.Join(extra, ", "))
	}
	return p, nil
}

// todoTitle returns the trimmed title.
func todoTitle(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", domain.Invalid("Title must be a string")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", domain.Invalid("Title cannot be empty or whitespace")
	}
	if charLen(s) > maxTitleLen {
		return "", domain.Invalid("Title must be 200 characters or less")
	}
	return s, nil
}

// todoDescription rejects explicit null along with every other non-string.
func todoDescription(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", domain.Invalid("Description must be a string")
	}
	if charLen(s) > maxDescriptionLen {
		return "", domain.Invalid("Description must be 1000 characters or less")
	}
	return s, nil
}
