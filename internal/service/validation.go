package service

import (
	"go-inventory-catalog/internal/model"
	"go-inventory-catalog/pkg/validator"
)

// ValidationError is returned when a request body fails field checks.
type ValidationError struct {
	Message string
	Fields  []*validator.ErrorResponse
}

func (e *ValidationError) Error() string { return e.Message }

const (
	msgMissingFields   = "Missing required fields"
	msgInvalidPrice    = "Invalid price"
	msgInvalidQuantity = "Invalid quantity"
)

func validateProductInput(in *model.ProductInput) error {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		for _, e := range errs {
			if e.Tag == "required" || e.Tag == "notblank" {
				return &ValidationError{Message: msgMissingFields, Fields: errs}
			}
		}
		if errs[0].FailedField == "quantity" {
			return &ValidationError{Message: msgInvalidQuantity, Fields: errs}
		}
		return &ValidationError{Message: "Invalid " + errs[0].FailedField, Fields: errs}
	}
	if in.Price.IsNegative() {
		return &ValidationError{
			Message: msgInvalidPrice,
			Fields:  []*validator.ErrorResponse{{FailedField: "price", Tag: "gte", Value: "0"}},
		}
	}
	return nil
}

func validateQuantityInput(in *model.QuantityInput) error {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return &ValidationError{Message: msgInvalidQuantity, Fields: errs}
	}
	return nil
}
