package router

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/jewelerp/backend/internal/domain/catalog"
)

var bindingOnce sync.Once

// registerValidations adds domain rules to gin's binding validator so bad
// enum values are rejected at the edge with a 400 instead of reaching a
// service.
func registerValidations() {
	bindingOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("metal_type", func(fl validator.FieldLevel) bool {
			return catalog.MetalType(fl.Field().String()).IsValid()
		})
	})
}
