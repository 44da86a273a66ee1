package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

// local validator, for Field() in ValidationErrors to return json-name
func newValidatorJSON() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func TestExtractErrorFields_NonValidationError(t *testing.T) {
	fields := ExtractErrorFields(errors.New("not a validation error"))
	require.Empty(t, fields)
}

// helper: validate struct, get single error and check fields
func checkSingleFieldError(t *testing.T, v *validator.Validate, s any, expectedField, expectedMsg string) {
	t.Helper()
	err := v.Struct(s)
	require.Error(t, err)

	fields := ExtractErrorFields(err)
	require.Len(t, fields, 1)
	require.Equal(t, expectedField, fields[0].FieldName)
	require.Equal(t, expectedMsg, fields[0].ErrorMessage)
}

func TestExtractErrorFields_TagMessages(t *testing.T) {
	v := newValidatorJSON()

	t.Run("required", func(t *testing.T) {
		type S struct {
			Markdown string `json:"markdown" validate:"required"`
		}
		checkSingleFieldError(t, v, S{Markdown: ""}, "markdown", "this field is required")
	})

	t.Run("min", func(t *testing.T) {
		type S struct {
			Markdown string `json:"markdown" validate:"min=3"`
		}
		checkSingleFieldError(t, v, S{Markdown: "ab"}, "markdown", "value is too short")
	})

	t.Run("max", func(t *testing.T) {
		type S struct {
			Markdown string `json:"markdown" validate:"max=2"`
		}
		checkSingleFieldError(t, v, S{Markdown: "abc"}, "markdown", "value is too long")
	})

	t.Run("url", func(t *testing.T) {
		type S struct {
			Link string `json:"link" validate:"url"`
		}
		checkSingleFieldError(t, v, S{Link: "http//bad"}, "link", "invalid URL format")
	})

	t.Run("oneof", func(t *testing.T) {
		type S struct {
			Style string `json:"style" validate:"oneof=primary secondary"`
		}
		checkSingleFieldError(t, v, S{Style: "sparkly"}, "style", "must be one of the allowed values")
	})

	t.Run("default_fallback_for_unknown_but_valid_tag", func(t *testing.T) {
		// using valid tag, which is not in mapping, to get into default case.
		type S struct {
			Color string `json:"color" validate:"hexcolor"`
		}
		checkSingleFieldError(t, v, S{Color: "not-hex"}, "color", "invalid input")
	})
}

func TestExtractErrorFromBuffer(t *testing.T) {
	exp := ErrorResponse{
		Error: "invalid params",
		Fields: []ErrorField{
			{FieldName: "markdown", ErrorMessage: "this field is required"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(exp))

	got, err := extractErrorFromBuffer(&buf)
	require.NoError(t, err)
	require.Equal(t, exp, *got)
}
