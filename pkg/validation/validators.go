package validation

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var vehicleTypes = map[string]bool{
	"Motorbike":     true,
	"Three-Wheeler": true,
	"Car":           true,
	"Buddy Van":     true,
	"Van":           true,
}

var bookingStatuses = map[string]bool{
	"pending":   true,
	"confirmed": true,
	"completed": true,
	"cancelled": true,
}

// RegisterCustomValidators registers domain validators on gin's binding validator
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("vehicle_type", func(fl validator.FieldLevel) bool {
		return vehicleTypes[fl.Field().String()]
	}); err != nil {
		return err
	}

	return v.RegisterValidation("booking_status", func(fl validator.FieldLevel) bool {
		return bookingStatuses[fl.Field().String()]
	})
}
