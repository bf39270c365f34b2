package handlers

import (
	"fmt"
	"sync"

	"github.com/0x24CaptainParrot/splitpay-service/internal/split"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
	errValidate  error
)

func initValidator() (*validator.Validate, error) {
	vld := validator.New(validator.WithRequiredStructEnabled())

	if err := vld.RegisterValidation("nonnegative_amount", func(fl validator.FieldLevel) bool {
		_, err := split.ParseAmount(fl.Field().String())
		return err == nil
	}); err != nil {
		return nil, fmt.Errorf("failed to register 'nonnegative_amount': %w", err)
	}

	return vld, nil
}

func validateStruct(s any) error {
	validateOnce.Do(func() {
		validate, errValidate = initValidator()
	})
	if errValidate != nil {
		return errValidate
	}
	return validate.Struct(s)
}
