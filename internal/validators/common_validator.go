package validators

import (
	"fmt"
	"reflect"
	"strings"

	"ridehail/internal/models"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their JSON names.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	validate.RegisterValidation("object_id", validateObjectID)
	validate.RegisterValidation("driver_status", validateDriverStatus)
	validate.RegisterValidation("complaint_status", validateComplaintStatus)
	validate.RegisterValidation("resolution_status", validateResolutionStatus)
}

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// HasTag reports whether any field failed one of the given tags.
func (v ValidationErrors) HasTag(tags ...string) bool {
	for _, err := range v {
		for _, tag := range tags {
			if err.Tag == tag {
				return true
			}
		}
	}
	return false
}

// Fields lists the fields that failed tag.
func (v ValidationErrors) Fields(tag string) []string {
	var fields []string
	for _, err := range v {
		if err.Tag == tag {
			fields = append(fields, err.Field)
		}
	}
	return fields
}

// ValidateStruct validates a struct and returns detailed errors
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		fieldErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return ValidationErrors{{Tag: "invalid", Message: err.Error()}}
		}
		for _, err := range fieldErrors {
			validationErrors = append(validationErrors, ValidationError{
				Field:   err.Field(),
				Tag:     err.Tag(),
				Value:   fmt.Sprintf("%v", err.Value()),
				Message: getErrorMessage(err),
			})
		}
	}

	return validationErrors
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "object_id":
		return "Invalid ID format"
	case "driver_status":
		return "Invalid driver status"
	case "complaint_status", "resolution_status":
		return "Invalid complaint status"
	default:
		return fmt.Sprintf("Validation failed for %s", err.Field())
	}
}

// Custom validation functions

func validateObjectID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Let required tag handle empty values
	}
	_, err := primitive.ObjectIDFromHex(value)
	return err == nil
}

func validateDriverStatus(fl validator.FieldLevel) bool {
	return models.DriverStatus(fl.Field().String()).IsValid()
}

func validateComplaintStatus(fl validator.FieldLevel) bool {
	return models.ComplaintStatusIn(models.ComplaintStatus(fl.Field().String()), models.ComplaintStatuses)
}

func validateResolutionStatus(fl validator.FieldLevel) bool {
	return models.ComplaintStatusIn(models.ComplaintStatus(fl.Field().String()), models.ComplaintResolutionStatuses)
}

// ParseObjectID converts a validated hex id.
func ParseObjectID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid object id %q: %w", hex, err)
	}
	return id, nil
}
