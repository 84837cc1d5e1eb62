package validator

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/m-lima/connect4/internal/game"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	if err := Register(validate); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}

// Register installs the custom rules on v. The "token" rule accepts the
// names of the two tokens.
func Register(v *validator.Validate) error {
	return v.RegisterValidation("token", func(fl validator.FieldLevel) bool {
		_, ok := game.ParseToken(fl.Field().String())
		return ok
	})
}

// RegisterBinding installs the custom rules on the validator gin uses for
// request binding.
func RegisterBinding() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding does not use go-playground/validator")
	}
	return Register(v)
}
