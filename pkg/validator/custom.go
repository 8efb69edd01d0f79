package validator

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	validate.RegisterValidation("lat", validateLat)
	validate.RegisterValidation("lng", validateLng)
	validate.RegisterValidation("notblank", validateNotBlank)
}

// decimalValue lets numeric tags run against decimal coordinates.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

func validateNotBlank(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return true
		}
	}
	return false
}
