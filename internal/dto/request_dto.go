package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// CredentialsRequest is used for both login and sign up.
type CredentialsRequest struct {
	Username string `validate:"required,max=64"`
	Password string `validate:"required,max=72"` // bcrypt refuses more than 72 bytes
}

// Normalize trims surrounding whitespace from the username. Passwords are taken verbatim.
func (r *CredentialsRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}

func (r CredentialsRequest) Validate() error {
	return describe(validate.Struct(r))
}

// SubmitExamRequest carries one 1-based selection per question, 0 meaning unanswered.
type SubmitExamRequest struct {
	Selections []int `validate:"dive,min=0,max=4"`
}

func (r SubmitExamRequest) Validate() error {
	return describe(validate.Struct(r))
}

// describe turns validator errors into a single readable message.
func describe(err error) error {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "max":
			if fe.Kind() == reflect.String {
				msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
			} else {
				msgs = append(msgs, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
			}
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
