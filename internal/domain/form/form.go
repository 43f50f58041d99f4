// Package form validates entity drafts before they reach a repository.
// Rules live as struct tags on the display models; a failed validation
// reports the offending json field names so callers can surface them.
package form

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors under the json name of the field, not the Go name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// DraftError reports the fields of a draft that violated their constraints.
// Nothing is persisted when a DraftError is returned.
type DraftError struct {
	Fields []string
}

func (e *DraftError) Error() string {
	return fmt.Sprintf("invalid draft: %s", strings.Join(e.Fields, ", "))
}

// Validate checks a draft against its struct tags. It returns nil when the
// draft is valid and a *DraftError naming every failed field otherwise.
func Validate(draft any) error {
	err := validate.Struct(draft)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}

	return &DraftError{Fields: fields}
}
