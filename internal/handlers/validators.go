package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// txnCodePattern matches the uppercase snake-case transaction type codes.
// Membership in the supported set is the posting rule resolver's call; the
// binding layer only rejects text that cannot be a type code at all.
var txnCodePattern = regexp.MustCompile(`^[A-Z][A-Z_]*$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("txncode", func(fl validator.FieldLevel) bool {
			return txnCodePattern.MatchString(fl.Field().String())
		})
	}
}
