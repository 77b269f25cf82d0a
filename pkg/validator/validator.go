package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report json names so messages match the request body
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	registerEnum(v, "gender", "Male", "Female", "Others")
	registerEnum(v, "role", "Admin", "Patient", "Doctor")
	registerEnum(v, "appointment_status", "Pending", "Accepted", "Completed", "Cancelled", "Rescheduled")
	registerEnum(v, "notification_type", "Appointment", "HealthRecord", "Vitals", "Prescription", "System", "Other")
	registerEnum(v, "record_type", "Lab Results", "X-Ray", "MRI", "CT Scan", "Prescription", "Vaccination",
		"Surgery Report", "Discharge Summary", "Medical Certificate", "Other")

	return &CustomValidator{
		validator: v,
	}
}

func registerEnum(v *validator.Validate, tag string, allowed ...string) {
	v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, a := range allowed {
			if value == a {
				return true
			}
		}
		return false
	})
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// HasTag reports whether err contains a failure of the given tag.
func HasTag(err error, tag string) bool {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	for _, e := range validationErrors {
		if e.Tag() == tag {
			return true
		}
	}
	return false
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "len":
				errors[field] = field + " must be exactly " + e.Param() + " characters"
			case "numeric":
				errors[field] = field + " must contain only digits"
			case "eqfield":
				errors[field] = field + " must match " + e.Param()
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "uuid":
				errors[field] = field + " must be a valid id"
			case "gender", "role", "appointment_status", "notification_type", "record_type":
				errors[field] = field + " has an unsupported value"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
