// Package classification of Product Registry API
//
// # Documentation for Product Registry API
//
// Schemes: http
// BasePath: /
// Version: 1.0.0
//
// Consumes:
// - application/json
//
// Produces:
// - application/json
//
// swagger:meta
package http

import "github.com/kahvecikaan/product-registry/internal/domain"

// NOTE: Types defined here are purely for documentation purposes
// These types are not used by any of the handlers

// Generic error message returned as a string
// swagger:response errorResponse
type errorResponseWrapper struct {
	// Description of the error
	// in: body
	Body ErrorResponse
}

// Validation errors defined as an array of strings
// swagger:response validationErrorResponse
type validationErrorResponseWrapper struct {
	// Collection of the errors
	// in: body
	Body ValidationError
}

// Data structure representing a single product
// swagger:response productResponse
type productResponseWrapper struct {
	// A single product
	// in: body
	Body domain.Product
}

// swagger:parameters getProductByID
type productIDParamsWrapper struct {
	// The ID of the product
	// in: path
	// required: true
	ID int64 `json:"id"`
}

// swagger:parameters addProduct
type productBodyParamsWrapper struct {
	// Product to register.
	// in: body
	// required: true
	Body domain.AddProductRequest
}

// ErrorResponse defines the structure for API error responses
//
// swagger:model
type ErrorResponse struct {
	// The error message
	//
	// required: true
	Message string `json:"message"`
}

// ValidationError defines the structure for API validation error responses
//
// swagger:model
type ValidationError struct {
	// The validation errors
	//
	// required: true
	Messages []string `json:"messages"`
}
