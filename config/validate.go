package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared; validator instances cache struct metadata.
var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterStructValidation(validateSteps, Config{})
}

// validateSteps keeps both sweeps within MaxSteps.
func validateSteps(sl validator.StructLevel) {
	c := sl.Current().Interface().(Config)
	for name, r := range map[string]Range{"Walks": c.Walks, "Tours": c.Tours} {
		if r.From > c.MaxSteps {
			sl.ReportError(r.From, name+".From", "From", "ltefield", "MaxSteps")
		}
		if r.To > c.MaxSteps {
			sl.ReportError(r.To, name+".To", "To", "ltefield", "MaxSteps")
		}
	}
}

// Validate checks every field and reports all failures in one error wrapping ErrInvalid.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}
