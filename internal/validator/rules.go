package validator

import (
	"log"
	"time"

	"chirpynosh_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the project's validation tags on the shared
// validator instance.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("dateonly", validateDateOnly)
	mustRegister("is-claim-status", validateClaimStatus)
	mustRegister("is-claimed-by", validateClaimedBy)
}

// validateDateOnly accepts YYYY-MM-DD calendar dates.
func validateDateOnly(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // emptiness is the 'required' tag's concern
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

func validateClaimStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ClaimStatus(value).IsValid()
}

func validateClaimedBy(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ClaimedBy(value).IsValid()
}
