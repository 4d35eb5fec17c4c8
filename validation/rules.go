package validation

import (
	"log"

	"github.com/go-playground/validator/v10"
)

const pairedTag = "paired"

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("notblank", notBlank)
	v.RegisterStructValidation(validatePairing, ProjectPayload{})
}

// notBlank rejects strings made only of whitespace.
func notBlank(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return true
		}
	}
	return false
}

// validatePairing enforces that tags[i] and technologies[i] describe the same entry.
func validatePairing(sl validator.StructLevel) {
	var p ProjectPayload
	switch v := sl.Current().Interface().(type) {
	case ProjectPayload:
		p = v
	case *ProjectPayload:
		p = *v
	default:
		return
	}
	if len(p.Tags) != len(p.Technologies) {
		sl.ReportError(p.Technologies, "technologies", "Technologies", pairedTag, "")
	}
}
