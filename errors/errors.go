package errors

import (
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ValidationError       ErrorType = "VALIDATION_ERROR"
	NotFoundError         ErrorType = "NOT_FOUND"
	TemplateNotFoundError ErrorType = "TEMPLATE_NOT_FOUND"
	WeatherError          ErrorType = "WEATHER_UNAVAILABLE"
	RuleDocumentError     ErrorType = "RULE_DOCUMENT_UNREADABLE"
	ItemNotFoundError     ErrorType = "ITEM_NOT_FOUND"
	ChecklistNotFound     ErrorType = "CHECKLIST_NOT_FOUND"
	ServerError           ErrorType = "SERVER_ERROR"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Raw        error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Raw
}

// GetHTTPStatus returns the HTTP status code associated with the error.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus == 0 {
		return getHTTPStatus(e.Type)
	}
	return e.HTTPStatus
}

// New creates a new AppError
func New(errType ErrorType, message string, detail string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     detail,
		HTTPStatus: getHTTPStatus(errType),
	}
}

// Wrap wraps a raw error with AppError context
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     err.Error(),
		HTTPStatus: getHTTPStatus(errType),
		Raw:        err,
	}
}

// Helper functions for common errors
func NotFound(entity string, id interface{}) *AppError {
	return &AppError{
		Type:       NotFoundError,
		Message:    fmt.Sprintf("%s not found", entity),
		Detail:     fmt.Sprintf("ID: %v", id),
		HTTPStatus: http.StatusNotFound,
	}
}

func ValidationFailed(message string, details string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    message,
		Detail:     details,
		HTTPStatus: http.StatusBadRequest,
	}
}

// TemplateNotFound indicates a named checklist template is missing or
// failed to parse. Fatal to the generation call that needed it.
func TemplateNotFound(name string, err error) *AppError {
	return &AppError{
		Type:       TemplateNotFoundError,
		Message:    "Template not found",
		Detail:     fmt.Sprintf("Template: %s", name),
		HTTPStatus: http.StatusInternalServerError,
		Raw:        err,
	}
}

// WeatherUnavailable indicates the weather collaborator is not configured
// or the forecast call failed. Callers downgrade this to "no weather items".
func WeatherUnavailable(err error, message string) *AppError {
	return &AppError{
		Type:       WeatherError,
		Message:    message,
		HTTPStatus: http.StatusServiceUnavailable,
		Raw:        err,
	}
}

// ItemNotFound indicates a checklist item lookup by an unknown ID. It marks
// a caller bug (stale ID) and is never silently ignored.
func ItemNotFound(itemID string) *AppError {
	return &AppError{
		Type:       ItemNotFoundError,
		Message:    "Checklist item not found",
		Detail:     fmt.Sprintf("Item ID: %s", itemID),
		HTTPStatus: http.StatusNotFound,
	}
}

func ChecklistNotFoundError(id string) *AppError {
	return &AppError{
		Type:       ChecklistNotFound,
		Message:    "Checklist not found",
		Detail:     fmt.Sprintf("Checklist ID: %s", id),
		HTTPStatus: http.StatusNotFound,
	}
}

func InternalServerError(message string) *AppError {
	return &AppError{
		Type:       ServerError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError:
		return http.StatusBadRequest
	case NotFoundError, ItemNotFoundError, ChecklistNotFound:
		return http.StatusNotFound
	case WeatherError:
		return http.StatusServiceUnavailable
	case TemplateNotFoundError, RuleDocumentError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
