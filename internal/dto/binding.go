package dto

import (
	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators wires the domain enums into gin's binding
// validator. Call once at startup before registering routes.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("supportedcurrency", func(fl validator.FieldLevel) bool {
		c := domain.Currency(fl.Field().String())
		return c == domain.VES || c == domain.USD
	})
	_ = v.RegisterValidation("movementdirection", func(fl validator.FieldLevel) bool {
		d := domain.MovementDirection(fl.Field().String())
		return d == domain.Income || d == domain.Expense
	})
}
