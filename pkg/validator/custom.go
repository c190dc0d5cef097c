package validator

import "github.com/go-playground/validator/v10"

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("lat", validateLat)
	validate.RegisterValidation("lng", validateLng)
	validate.RegisterValidation("months", validateMonths)
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

// months: non-empty set of calendar month numbers, each 1..12, no duplicates.
func validateMonths(fl validator.FieldLevel) bool {
	months, ok := fl.Field().Interface().([]int)
	if !ok || len(months) == 0 || len(months) > 12 {
		return false
	}
	seen := make(map[int]bool, len(months))
	for _, m := range months {
		if m < 1 || m > 12 || seen[m] {
			return false
		}
		seen[m] = true
	}
	return true
}
