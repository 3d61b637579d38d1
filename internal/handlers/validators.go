package handlers

import (
	"fmt"
	"sync"

	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
	"github.com/SscSPs/camp_ledger_app/internal/utils/accounting"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	validatorsOnce sync.Once
	validatorsErr  error
)

// RegisterValidators adds the domain binding tags to gin's validator engine.
// Safe to call more than once.
func RegisterValidators() error {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			validatorsErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		tags := map[string]validator.Func{
			"phone8": func(fl validator.FieldLevel) bool {
				return accounting.ValidatePhone(fl.Field().String())
			},
			"personname": func(fl validator.FieldLevel) bool {
				return accounting.ValidatePersonName(fl.Field().String())
			},
			"servicename": func(fl validator.FieldLevel) bool {
				return domain.IsKnownService(fl.Field().String())
			},
			"paymentmethod": func(fl validator.FieldLevel) bool {
				return domain.IsKnownPaymentMethod(fl.Field().String())
			},
		}
		for tag, fn := range tags {
			if err := v.RegisterValidation(tag, fn); err != nil {
				validatorsErr = fmt.Errorf("register %s validator: %w", tag, err)
				return
			}
		}
	})
	return validatorsErr
}
