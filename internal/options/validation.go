package options

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/stagehand/internal/color"
	stagehanderrors "github.com/alexisbeaulieu97/stagehand/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			return Theme(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("backdrop", func(fl validator.FieldLevel) bool {
			return Backdrop(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("gradient", func(fl validator.FieldLevel) bool {
			return Gradient(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
			return color.Valid(fl.Field().String())
		})

		_ = v.RegisterValidation("radius_step", func(fl validator.FieldLevel) bool {
			return onRadiusStep(fl.Field().Float())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks every field against its closed domain. Enumerated tags fail with
// an UnrecognizedOptionError, colors with an InvalidColorFormatError and the radius
// with a ValidationError.
func (c Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(c, err)
	}
	return nil
}

func convertValidationError(c Config, err error) error {
	ves, ok := err.(validator.ValidationErrors)
	if !ok || len(ves) == 0 {
		return stagehanderrors.NewValidationError("config", err.Error(), err)
	}

	ve := ves[0]
	switch ve.Tag() {
	case "theme":
		return stagehanderrors.NewUnrecognizedOptionError("theme", string(c.Theme), toStrings(themes))
	case "backdrop":
		return stagehanderrors.NewUnrecognizedOptionError("backdrop", string(c.Backdrop), toStrings(backdrops))
	case "gradient":
		return stagehanderrors.NewUnrecognizedOptionError("gradient", string(c.Gradient), toStrings(gradients))
	case "hexcolor6":
		return stagehanderrors.NewInvalidColorFormatError(c.PrimaryColor, nil)
	case "radius_step":
		return stagehanderrors.NewValidationError("radius", fmt.Sprintf("%s is not a multiple of %.1f", FormatRadius(c.Radius), RadiusStep), err)
	default:
		msg := fmt.Sprintf("%s must be between %.1f and %.1f", FormatRadius(c.Radius), MinRadius, MaxRadius)
		return stagehanderrors.NewValidationError("radius", msg, err)
	}
}
