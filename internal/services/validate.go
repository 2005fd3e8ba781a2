package services

import (
	"errors"
	"regexp"

	"travelbook/internal/domain"

	"github.com/go-playground/validator/v10"
)

var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	return v
}

// fieldErrors runs struct validation and turns each failed rule into a
// ValidationError using msg to phrase it. A nil result means s is valid.
func fieldErrors(s any, msg func(validator.FieldError) domain.ValidationError) domain.ValidationErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.ValidationErrors{{Msg: err.Error(), Err: err}}
	}
	out := make(domain.ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, msg(fe))
	}
	return out
}
