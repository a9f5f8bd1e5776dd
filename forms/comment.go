package forms

import "strings"

type CommentFields struct {
	Text string `form:"text" binding:"required"`
}

// ValidateComment trims the text and makes sure something is left
func ValidateComment(fields CommentFields) (CommentFields, error) {
	record := CommentFields{Text: strings.TrimSpace(fields.Text)}
	verr := &ValidationError{}
	if err := validateSchema(&record, verr); err != nil {
		return record, err
	}
	return record, verr.orNil()
}
