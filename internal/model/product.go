package model

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// MaxNameLength is the longest accepted product, option or detail name.
const MaxNameLength = 255

// Money columns are NUMERIC(12,2) for products and NUMERIC(10,2) for options
// and details.
const (
	moneyScale          = 2
	productAmountDigits = 10
	optionAmountDigits  = 8
)

// Product represents an item in the back-office catalogue.
// Business state only changes through the methods below.
type Product struct {
	ID          int64           `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	ShippingFee decimal.Decimal `json:"shippingFee" db:"shipping_fee"`
	IsActive    bool            `json:"isActive" db:"is_active"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at"`
}

// NewProduct builds an active product. ID and timestamps are assigned on insert.
func NewProduct(name, description string, price, shippingFee decimal.Decimal) *Product {
	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
		ShippingFee: shippingFee,
		IsActive:    true,
	}
}

// Update replaces the editable fields. Order history does not gate product edits.
func (p *Product) Update(name, description string, price, shippingFee decimal.Decimal) {
	p.Name = name
	p.Description = description
	p.Price = price
	p.ShippingFee = shippingFee
}

// Activate makes the product visible again. Activating an active product is an error.
func (p *Product) Activate() error {
	if p.IsActive {
		return ErrProductAlreadyActive
	}
	p.IsActive = true
	return nil
}

// Deactivate hides the product. It is idempotent.
func (p *Product) Deactivate() {
	p.IsActive = false
}

// IsDeletable reports whether the product may be removed; only order history matters.
func (p *Product) IsDeletable(hasOrder bool) bool {
	return !hasOrder
}

// ProductRequest represents the request payload for creating or updating a product.
type ProductRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ShippingFee *decimal.Decimal `json:"shippingFee"`
}

// Validate checks the field constraints of the request.
func (r *ProductRequest) Validate() error {
	verr := &ValidationError{}

	if strings.TrimSpace(r.Name) == "" {
		verr.add("name", "name is required")
	} else {
		checkLength(verr, "name", r.Name, MaxNameLength)
	}
	if strings.TrimSpace(r.Description) == "" {
		verr.add("description", "description is required")
	}
	checkAmount(verr, "price", r.Price, true, productAmountDigits)
	checkAmount(verr, "shippingFee", r.ShippingFee, true, productAmountDigits)

	return verr.orNil()
}

// checkAmount validates an optional or required non-negative money field
// holding at most intDigits digits before the decimal point and two after it.
func checkAmount(verr *ValidationError, field string, v *decimal.Decimal, required bool, intDigits int32) {
	if v == nil {
		if required {
			verr.add(field, field+" is required")
		}
		return
	}
	limit := decimal.New(1, intDigits)
	switch {
	case v.IsNegative():
		verr.add(field, field+" must be zero or greater")
	case v.GreaterThanOrEqual(limit):
		verr.add(field, fmt.Sprintf("%s must be less than %s", field, limit))
	case !v.Equal(v.Truncate(moneyScale)):
		verr.add(field, fmt.Sprintf("%s must have at most %d decimal places", field, moneyScale))
	}
}

// checkLength bounds s to max characters, matching VARCHAR(max) columns.
func checkLength(verr *ValidationError, field, s string, max int) {
	if utf8.RuneCountInString(s) > max {
		verr.add(field, fmt.Sprintf("%s must be at most %d characters", field, max))
	}
}
