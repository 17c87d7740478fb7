package api

import (
	"log/slog"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weathermap.app/internal/core/layers"
)

var registerOnce sync.Once

// validateLayer accepts the names of the catalogue layers
func validateLayer(fl validator.FieldLevel) bool {
	_, err := layers.Parse(fl.Field().String())
	return err == nil
}

// RegisterValidators installs the custom binding tags on gin's validator
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			if err := v.RegisterValidation("layer", validateLayer); err != nil {
				slog.Warn("Failed to register layer validator", "error", err)
			}
		}
	})
}
