package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (Product, error)
	List(ctx context.Context, req ListRequest) ([]Product, error)
	GetByID(ctx context.Context, id string) (Product, error)
}

// CreateRequest carries a raw submission. Status is deliberately absent:
// every record enters the store as pending no matter what the caller sent.
type CreateRequest struct {
	Name        string
	Description string
	Category    string
	Country     string
	Logo        string
	Website     *string
	Twitter     *string
	Github      *string
}

type ListRequest struct {
	// Status filters by moderation state; empty returns every record.
	Status   string
	Category string
	Country  string
}

var (
	ErrInvalidID     = errors.New("invalid_id")
	ErrInvalidStatus = errors.New("invalid_status")
	ErrNotFound      = errors.New("not_found")
)

// FieldError describes a single violated constraint on a submission field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError enumerates every violated field, not just the first.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation error"
	}
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("validation error: %s", strings.Join(names, ", "))
}

func (e *ValidationError) Add(field, code, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Code: code, Message: message})
}
