package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/appfinanceiro/ledger_view_app/internal/core/domain"
)

// registerCustomValidators adds the domain binding rules to gin's validator
// engine. The cnpj rule accepts masked or bare-digit input; masking happens
// later on save.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("cnpj", func(fl validator.FieldLevel) bool {
			return domain.ValidCNPJ(domain.FormatCNPJ(fl.Field().String()))
		})
	}
}
