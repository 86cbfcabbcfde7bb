package validators

import (
	"fmt"
	"strings"

	"citytransit/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("route_preference", validateRoutePreference)
	validate.RegisterValidation("ticket_class", validateTicketClass)
	validate.RegisterValidation("ticket_mode", validateTicketMode)
	validate.RegisterValidation("transport_mode", validateTransportMode)
}

// ValidationError represents a field validation error.
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

// Details flattens the errors into a field -> message map for responses.
func (v ValidationErrors) Details() map[string]string {
	details := make(map[string]string, len(v))
	for _, err := range v {
		details[err.Field] = err.Message
	}
	return details
}

// ValidateStruct validates a struct and returns detailed errors.
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
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
	case "route_preference":
		return "preference must be one of: fastest, cheapest, safest"
	case "ticket_class":
		return "ticket class must be one of: single, day_pass, monthly"
	case "ticket_mode":
		return "transport type must be one of: bus, metro"
	case "transport_mode":
		return "transport mode must be one of: bus, metro, auto, taxi"
	default:
		return fmt.Sprintf("%s is invalid", err.Field())
	}
}

func validateRoutePreference(fl validator.FieldLevel) bool {
	return models.Preference(fl.Field().String()).Valid()
}

func validateTicketClass(fl validator.FieldLevel) bool {
	return models.TicketClass(fl.Field().String()).Valid()
}

func validateTicketMode(fl validator.FieldLevel) bool {
	return models.TransportMode(fl.Field().String()).Ticketable()
}

func validateTransportMode(fl validator.FieldLevel) bool {
	return models.TransportMode(fl.Field().String()).Valid()
}
