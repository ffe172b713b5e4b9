package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Validation struct {
	validator *validator.Validate
}

func NewValidation() *Validation {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	v.RegisterValidation("notblank", validateNotBlank)
	v.RegisterValidation("discount_policy", validateDiscountPolicy)
	return &Validation{validator: v}
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateDiscountPolicy(fl validator.FieldLevel) bool {
	policy, ok := fl.Field().Interface().(DiscountPolicy)
	return ok && policy.Valid()
}

// fieldMessages maps struct fields to the message reported when they fail.
var fieldMessages = map[string]string{
	"Name":           MsgNameRequired,
	"Price":          MsgPriceNotPositive,
	"DiscountPolicy": MsgDiscountPolicyRequired,
}

// ValidationError wraps the validator's FieldError
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (v ValidationError) Error() string {
	return fmt.Sprintf("Field '%s': %s", v.Field, v.Message)
}

// ValidationErrors is a slice of ValidationError. A non-empty value is an
// error matching ErrInvalidArgument.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidArgument, strings.Join(ve.Messages(), "; "))
}

func (ve ValidationErrors) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Messages returns the human readable message of each failure.
func (ve ValidationErrors) Messages() []string {
	msgs := make([]string, 0, len(ve))
	for _, v := range ve {
		msgs = append(msgs, v.Message)
	}
	return msgs
}

func (v *Validation) Validate(i interface{}) ValidationErrors {
	var errs ValidationErrors

	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return ValidationErrors{{Message: err.Error()}}
	}

	for _, fe := range fieldErrs {
		msg, ok := fieldMessages[fe.StructField()]
		if !ok {
			msg = fmt.Sprintf("failed on the '%s' tag", fe.Tag())
		}
		errs = append(errs, ValidationError{
			Field:   fe.Field(),
			Message: msg,
		})
	}

	return errs
}
