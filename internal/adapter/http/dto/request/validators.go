package request

import (
	"os_service_api/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by the request DTOs to
// gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("order_status", validOrderStatus)
}

func validOrderStatus(fl validator.FieldLevel) bool {
	_, err := entities.ParseOrderStatus(fl.Field().String())
	return err == nil
}
