package domain

// Messages reported when a product field fails validation.
const (
	MsgNameRequired           = "product name is required"
	MsgPriceNotPositive       = "product price must be greater than zero"
	MsgDiscountPolicyRequired = "discount policy is required"
)

var requestValidation = NewValidation()

// AddProductRequest carries the fields needed to register a product.
// Values built with NewAddProductRequest are always valid.
//
// swagger:model
type AddProductRequest struct {
	// The name of the product
	//
	// required: true
	// example: Coffee
	Name string `json:"name" yaml:"name" validate:"notblank"`

	// The price of the product in minor units
	//
	// required: true
	// min: 1
	// example: 1000
	Price int `json:"price" yaml:"price" validate:"gt=0"`

	// The discount policy applied to the product
	//
	// required: true
	// enum: NONE
	DiscountPolicy DiscountPolicy `json:"discount_policy" yaml:"discount_policy" validate:"discount_policy"`
}

// NewAddProductRequest validates its arguments and returns the request.
// It fails with an error matching ErrInvalidArgument when any field is invalid.
func NewAddProductRequest(name string, price int, policy DiscountPolicy) (AddProductRequest, error) {
	r := AddProductRequest{
		Name:           name,
		Price:          price,
		DiscountPolicy: policy,
	}
	if errs := requestValidation.Validate(&r); len(errs) > 0 {
		return AddProductRequest{}, errs
	}
	return r, nil
}
