// Package forms validates and normalizes submitted posts and comments.
//
// Each form has a static schema: a struct whose `form` tags name the submitted fields and whose
// `binding` tags are checked by gin's validator. Validation never knows who is submitting.
package forms

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

const (
	MessageRequired     = "This field is required."
	MessageInvalidGroup = "Select a valid choice. That choice is not one of the available choices."
	MessageInvalidImage = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."
	MessageTooLong      = "Ensure this value has fewer characters."
)

// ValidationError maps offending form fields to their messages
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.FieldNames(), ", ")
}

func (e *ValidationError) FieldNames() []string {
	names := lo.Keys(e.Fields)
	sort.Strings(names)
	return names
}

func (e *ValidationError) Has(field string) bool {
	_, ok := e.Fields[field]
	return ok
}

func (e *ValidationError) Message(field string) string {
	return e.Fields[field]
}

func (e *ValidationError) add(field, message string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// AsValidationError returns the field errors if err carries any
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	ok := errors.As(err, &verr)
	return verr, ok
}

// validateSchema runs the binding tags of the schema and reports failures by form field name
func validateSchema(schema any, verr *ValidationError) error {
	err := binding.Validator.ValidateStruct(schema)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}
	schemaType := reflect.Indirect(reflect.ValueOf(schema)).Type()
	for _, fe := range fieldErrors {
		name := strings.ToLower(fe.StructField())
		if field, ok := schemaType.FieldByName(fe.StructField()); ok {
			if tag := field.Tag.Get("form"); tag != "" && tag != "-" {
				name = tag
			}
		}
		switch fe.Tag() {
		case "required":
			verr.add(name, MessageRequired)
		case "max":
			verr.add(name, MessageTooLong)
		default:
			verr.add(name, fe.Error())
		}
	}
	return nil
}
