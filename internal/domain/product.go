package domain

import "encoding/json"

// ProductID identifies a persisted product.
type ProductID int64

// Product is a registered product. Its id is absent until a repository
// assigns one, and can be assigned only once.
type Product struct {
	id             ProductID
	name           string
	price          int
	discountPolicy DiscountPolicy
}

// NewProduct builds a Product, checking the same rules as AddProductRequest.
func NewProduct(name string, price int, policy DiscountPolicy) (*Product, error) {
	if err := HasText(name, MsgNameRequired); err != nil {
		return nil, err
	}
	if err := IsTrue(price > 0, MsgPriceNotPositive); err != nil {
		return nil, err
	}
	if err := NotZero(policy, MsgDiscountPolicyRequired); err != nil {
		return nil, err
	}
	if err := IsTrue(policy.Valid(), MsgDiscountPolicyRequired); err != nil {
		return nil, err
	}

	return &Product{
		name:           name,
		price:          price,
		discountPolicy: policy,
	}, nil
}

// AssignID sets the product id. Ids are positive and a product keeps the
// first id it is given.
func (p *Product) AssignID(id ProductID) error {
	if p.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if err := IsTrue(id > 0, "product id must be positive"); err != nil {
		return err
	}
	p.id = id
	return nil
}

// ID returns the product id and whether one has been assigned.
func (p *Product) ID() (ProductID, bool) {
	return p.id, p.id != 0
}

func (p *Product) Name() string                   { return p.name }
func (p *Product) Price() int                     { return p.price }
func (p *Product) DiscountPolicy() DiscountPolicy { return p.discountPolicy }

// productView is the serialised form of a Product.
//
// swagger:model Product
type productView struct {
	// The ID of the product, absent until it is saved
	//
	// example: 1
	ID *ProductID `json:"id,omitempty" yaml:"id,omitempty"`

	// required: true
	// example: Coffee
	Name string `json:"name" yaml:"name"`

	// required: true
	// example: 1000
	Price int `json:"price" yaml:"price"`

	// required: true
	// enum: NONE
	DiscountPolicy DiscountPolicy `json:"discount_policy" yaml:"discount_policy"`
}

func (p *Product) view() productView {
	v := productView{
		Name:           p.name,
		Price:          p.price,
		DiscountPolicy: p.discountPolicy,
	}
	if id, ok := p.ID(); ok {
		v.ID = &id
	}
	return v
}

func (p *Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.view())
}

func (p *Product) MarshalYAML() (interface{}, error) {
	return p.view(), nil
}
