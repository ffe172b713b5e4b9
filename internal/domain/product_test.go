package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	testCases := []struct {
		name    string
		pname   string
		price   int
		policy  DiscountPolicy
		message string
	}{
		{"Valid product", "상품명", 1000, DiscountPolicyNone, ""},
		{"Empty name", "", 1000, DiscountPolicyNone, MsgNameRequired},
		{"Blank name", "   ", 1000, DiscountPolicyNone, MsgNameRequired},
		{"Zero price", "상품명", 0, DiscountPolicyNone, MsgPriceNotPositive},
		{"Negative price", "상품명", -1, DiscountPolicyNone, MsgPriceNotPositive},
		{"Missing policy", "상품명", 1000, DiscountPolicyUnknown, MsgDiscountPolicyRequired},
		{"Undefined policy", "상품명", 1000, DiscountPolicy(42), MsgDiscountPolicyRequired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewProduct(tc.pname, tc.price, tc.policy)

			if tc.message == "" {
				require.NoError(t, err)
				assert.Equal(t, tc.pname, p.Name())
				assert.Equal(t, tc.price, p.Price())
				assert.Equal(t, tc.policy, p.DiscountPolicy())
				return
			}

			require.Error(t, err)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, ErrInvalidArgument)

			var iae *InvalidArgumentError
			require.True(t, errors.As(err, &iae))
			assert.Equal(t, tc.message, iae.Message)
		})
	}
}

func TestProduct_AssignID(t *testing.T) {
	p, err := NewProduct("상품명", 1000, DiscountPolicyNone)
	require.NoError(t, err)

	id, ok := p.ID()
	assert.False(t, ok)
	assert.Zero(t, id)

	require.NoError(t, p.AssignID(1))
	id, ok = p.ID()
	assert.True(t, ok)
	assert.Equal(t, ProductID(1), id)

	assert.ErrorIs(t, p.AssignID(2), ErrIDAlreadyAssigned)
	id, _ = p.ID()
	assert.Equal(t, ProductID(1), id)
}

func TestProduct_AssignIDRejectsNonPositive(t *testing.T) {
	p, err := NewProduct("상품명", 1000, DiscountPolicyNone)
	require.NoError(t, err)

	assert.ErrorIs(t, p.AssignID(0), ErrInvalidArgument)
	assert.ErrorIs(t, p.AssignID(-3), ErrInvalidArgument)

	_, ok := p.ID()
	assert.False(t, ok)
}

func TestProduct_MarshalJSON(t *testing.T) {
	p, err := NewProduct("Latte", 2450, DiscountPolicyNone)
	require.NoError(t, err)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Latte","price":2450,"discount_policy":"NONE"}`, string(data))

	require.NoError(t, p.AssignID(7))
	data, err = json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"name":"Latte","price":2450,"discount_policy":"NONE"}`, string(data))
}
