package forms

import (
	"regexp"
	"strings"
)

const (
	MessageInvalidUsername = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	MessageUsernameTaken   = "A user with that username already exists."
	MessagePasswordShort   = "This password is too short. It must contain at least 8 characters."
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

type SignupFields struct {
	Username string `form:"username" binding:"required,max=150"`
	Name     string `form:"name" binding:"max=150"`
	Password string `form:"password" binding:"required"`
}

// ValidateSignup checks the account form, uniqueness of the username is left to the caller
func ValidateSignup(fields SignupFields) (SignupFields, error) {
	record := SignupFields{
		Username: strings.TrimSpace(fields.Username),
		Name:     strings.TrimSpace(fields.Name),
		Password: fields.Password,
	}
	verr := &ValidationError{}
	if err := validateSchema(&record, verr); err != nil {
		return record, err
	}
	if record.Username != "" && !usernamePattern.MatchString(record.Username) {
		verr.add("username", MessageInvalidUsername)
	}
	if record.Password != "" && len([]rune(record.Password)) < 8 {
		verr.add("password", MessagePasswordShort)
	}
	return record, verr.orNil()
}

// UsernameTaken reports a duplicate username the same way as the other field errors
func UsernameTaken() *ValidationError {
	verr := &ValidationError{}
	verr.add("username", MessageUsernameTaken)
	return verr
}
