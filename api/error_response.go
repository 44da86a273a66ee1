package api

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidParams = errors.New("invalid params")

type ErrorField struct {
	FieldName    string `json:"field_name"`
	ErrorMessage string `json:"error_message"`
}

type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []ErrorField `json:"fields,omitempty"`
}

func NewErrorResponse(err error, fields ...ErrorField) ErrorResponse {
	return ErrorResponse{Error: err.Error(), Fields: fields}
}

// ExtractErrorFields turns validator errors into per-field messages for the
// editor UI. Field names come from the json tags via the tag-name func
// registered at startup.
func ExtractErrorFields(err error) []ErrorField {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make([]ErrorField, 0, len(validationErrs))
	for _, fe := range validationErrs {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "this field is required"
		case "min":
			msg = "value is too short"
		case "max":
			msg = "value is too long"
		case "url":
			msg = "invalid URL format"
		case "oneof":
			msg = "must be one of the allowed values"
		default:
			msg = "invalid input"
		}
		fields = append(fields, ErrorField{FieldName: fe.Field(), ErrorMessage: msg})
	}
	return fields
}

func extractErrorFromBuffer(buf *bytes.Buffer) (*ErrorResponse, error) {
	var resp ErrorResponse
	if err := json.NewDecoder(buf).Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
