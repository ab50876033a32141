package rig

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the structural rules a scene must satisfy: unique object
// names, unique bone names per armature, armature data on every ARMATURE,
// and an active object that exists.
func Validate(s *Scene) error {
	if s == nil {
		return errors.New("scene cannot be nil")
	}

	if err := validate.Struct(s); err != nil {
		return formatValidationError(err)
	}

	if s.Active != "" && s.Object(s.Active) == nil {
		return fmt.Errorf("active object '%s' not found", s.Active)
	}

	for _, obj := range s.Objects {
		if obj.Armature != nil && obj.Type != TypeArmature {
			return fmt.Errorf("object '%s' has armature data but type %s", obj.Name, obj.Type)
		}
	}

	return nil
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	// Report the first failure; the namespace locates it within the scene
	e := validationErrs[0]
	where := e.Namespace()
	switch e.Tag() {
	case "required", "required_if":
		return fmt.Errorf("%s: field is required", where)
	case "unique":
		return fmt.Errorf("%s: duplicate %s", where, e.Param())
	case "oneof":
		return fmt.Errorf("%s: must be one of [%s], got %v", where, e.Param(), e.Value())
	default:
		return fmt.Errorf("%s: validation failed (%s)", where, e.Tag())
	}
}
