package dto

import (
	"fmt"
	"reflect"

	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators installs the custom binding rules used by the request DTOs:
//
//	decimal_gt0   the decimal amount is strictly positive
//	currency      a supported ledger currency code (USD, SYP)
//	staff_module  a module tag that can appear in a staff allow-list
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	// Decimals are validated through their string form.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	if err := v.RegisterValidation("decimal_gt0", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.IsPositive()
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseCurrency(fl.Field().String(), "")
		return ok && fl.Field().String() != ""
	}); err != nil {
		return err
	}
	return v.RegisterValidation("staff_module", func(fl validator.FieldLevel) bool {
		return domain.ModuleTag(fl.Field().String()).IsStaffModule()
	})
}
