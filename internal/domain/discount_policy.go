package domain

import (
	"fmt"
	"strings"
)

// DiscountPolicy classifies how a product's price may be discounted.
// The zero value means no policy was given and is never valid.
type DiscountPolicy int

const (
	DiscountPolicyUnknown DiscountPolicy = iota
	DiscountPolicyNone
)

var discountPolicyNames = map[DiscountPolicy]string{
	DiscountPolicyNone: "NONE",
}

func (p DiscountPolicy) String() string {
	if name, ok := discountPolicyNames[p]; ok {
		return name
	}
	return "UNKNOWN"
}

// Valid reports whether p is one of the defined policies.
func (p DiscountPolicy) Valid() bool {
	_, ok := discountPolicyNames[p]
	return ok
}

// ParseDiscountPolicy converts a policy name such as "NONE" into a DiscountPolicy.
func ParseDiscountPolicy(s string) (DiscountPolicy, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for p, n := range discountPolicyNames {
		if n == name {
			return p, nil
		}
	}
	return DiscountPolicyUnknown, &InvalidArgumentError{
		Message: fmt.Sprintf("unknown discount policy %q", s),
	}
}

func (p DiscountPolicy) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, &InvalidArgumentError{Message: MsgDiscountPolicyRequired}
	}
	return []byte(p.String()), nil
}

// UnmarshalText leaves an empty value as DiscountPolicyUnknown so that
// validation, not decoding, reports the missing policy.
func (p *DiscountPolicy) UnmarshalText(text []byte) error {
	if len(strings.TrimSpace(string(text))) == 0 {
		*p = DiscountPolicyUnknown
		return nil
	}
	parsed, err := ParseDiscountPolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
