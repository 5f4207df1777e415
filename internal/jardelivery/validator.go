package jardelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/threejars/ledger/pkg/kindpkg"
)

// ValidJarKind validates whether the jar kind is supported.
var ValidJarKind validator.Func = func(fl validator.FieldLevel) bool {
	if kind, ok := fl.Field().Interface().(string); ok {
		return kindpkg.IsSupportedJarKind(kind)
	}

	return false
}
