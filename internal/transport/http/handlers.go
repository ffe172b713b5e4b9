package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"

	"github.com/kahvecikaan/product-registry/internal/domain"
	"github.com/kahvecikaan/product-registry/internal/service"
)

type ProductHandler struct {
	productService service.ProductService
	logger         hclog.Logger
}

func NewProductHandler(ps service.ProductService, log hclog.Logger) *ProductHandler {
	return &ProductHandler{
		productService: ps,
		logger:         log,
	}
}

// AddProduct handles POST /products
//
// swagger:route POST /products products addProduct
//
// Registers a new product and assigns it the next id.
//
// Responses:
//
//	201: productResponse
//	400: errorResponse
//	422: validationErrorResponse
//	500: errorResponse
func (h *ProductHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	// Retrieve the validated request from the context
	request, ok := r.Context().Value(ContextKeyAddProductRequest).(domain.AddProductRequest)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid product data")
		return
	}

	product, err := h.productService.AddProduct(r.Context(), request)
	if err != nil {
		var verrs domain.ValidationErrors
		var iae *domain.InvalidArgumentError
		switch {
		case errors.As(err, &verrs):
			writeValidationError(w, verrs.Messages())
		case errors.As(err, &iae):
			writeValidationError(w, []string{iae.Message})
		default:
			h.logger.Error("Error adding product", "error", err)
			writeError(w, http.StatusInternalServerError, "Error adding product")
		}
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// GetProductByID handles GET /products/{id}
//
// swagger:route GET /products/{id} products getProductByID
//
// Returns a product by ID.
//
// Responses:
//
//	200: productResponse
//	400: errorResponse
//	404: errorResponse
//	500: errorResponse
func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(r.Context(), domain.ProductID(id))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Error("Error getting product", "error", err)
		writeError(w, http.StatusInternalServerError, "Error getting product")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}

func writeValidationError(w http.ResponseWriter, messages []string) {
	writeJSON(w, http.StatusUnprocessableEntity, ValidationError{Messages: messages})
}
