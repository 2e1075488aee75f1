package validator

import (
	"regexp"

	val "github.com/go-playground/validator/v10"

	"sahayak/shared/failure"
)

var validate *val.Validate

// bandPattern accepts the textual quantity bands carried by price book rows:
// "<=3", ">=7", "4-6" or a bare integer.
var bandPattern = regexp.MustCompile(`^(<=\d+|>=\d+|\d+-\d+|\d+)$`)

func registerBandValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	return bandPattern.MatchString(value)
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("band", registerBandValidation)
	if err != nil {
		panic(err)
	}
}

// ValidateStruct performs validation on the struct using the validator
// package. If the struct is invalid according to the validation rules, an
// error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
