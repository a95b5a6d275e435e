package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MaxActiveOptions is the number of options a product may have active at once.
const MaxActiveOptions = 3

// OptionType describes how a customer supplies an option value.
type OptionType string

const (
	// OptionTypeInput options carry their own price and have no details.
	OptionTypeInput OptionType = "INPUT"
	// OptionTypeSelect options are priced through one of their details.
	OptionTypeSelect OptionType = "SELECT"
)

// Valid reports whether t is a known option type.
func (t OptionType) Valid() bool {
	return t == OptionTypeInput || t == OptionTypeSelect
}

// ProductOption is a configurable option of a product. It owns its details.
type ProductOption struct {
	ID          int64            `json:"id" db:"id"`
	ProductID   int64            `json:"productId" db:"product_id"`
	OptionName  string           `json:"optionName" db:"option_name"`
	OptionType  OptionType       `json:"optionType" db:"option_type"`
	OptionPrice *decimal.Decimal `json:"optionPrice" db:"option_price"`
	IsActive    bool             `json:"isActive" db:"is_active"`
	CreatedAt   time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time        `json:"updatedAt" db:"updated_at"`

	Details []*OptionDetail `json:"-"`
}

// NewProductOption builds an active option. The price is dropped unless the type is INPUT.
func NewProductOption(productID int64, name string, optionType OptionType, price *decimal.Decimal) *ProductOption {
	return &ProductOption{
		ProductID:   productID,
		OptionName:  name,
		OptionType:  optionType,
		OptionPrice: priceFor(optionType, price),
		IsActive:    true,
	}
}

// CheckOptionCapacity fails once a product already has MaxActiveOptions active options.
func CheckOptionCapacity(activeCount int) error {
	if activeCount >= MaxActiveOptions {
		return ErrOptionLimitExceeded
	}
	return nil
}

// Activate turns the option and all of its details on.
// activeCount is the number of currently active options of the parent product.
func (o *ProductOption) Activate(activeCount int) error {
	if err := CheckOptionCapacity(activeCount); err != nil {
		return err
	}
	o.IsActive = true
	for _, d := range o.Details {
		if err := d.Activate(o); err != nil {
			return err
		}
	}
	return nil
}

// Deactivate turns the option and all of its details off.
func (o *ProductOption) Deactivate() {
	o.IsActive = false
	for _, d := range o.Details {
		d.Deactivate()
	}
}

// TypeChanged reports whether switching to t is a structural change.
func (o *ProductOption) TypeChanged(t OptionType) bool {
	return o.OptionType != t
}

// IsUpdatable reports whether the option may be edited.
func (o *ProductOption) IsUpdatable(hasOrder bool) bool {
	return !hasOrder
}

// IsDeletable reports whether the option may be removed.
func (o *ProductOption) IsDeletable(hasOrder bool) bool {
	return !hasOrder
}

// Update applies new option fields. A type change deactivates this record; callers are
// expected to create a replacement option instead of keeping the mutated one.
func (o *ProductOption) Update(name string, optionType OptionType, price *decimal.Decimal, hasOrder bool) error {
	if !o.IsUpdatable(hasOrder) {
		return ErrOptionCannotBeUpdated
	}
	if o.TypeChanged(optionType) {
		o.Deactivate()
	}
	o.OptionName = name
	o.OptionType = optionType
	o.OptionPrice = priceFor(optionType, price)
	return nil
}

func priceFor(optionType OptionType, price *decimal.Decimal) *decimal.Decimal {
	if optionType != OptionTypeInput || price == nil {
		return nil
	}
	p := *price
	return &p
}

// ProductOptionRequest represents the request payload for creating or updating an option.
type ProductOptionRequest struct {
	OptionName  string           `json:"optionName"`
	OptionType  OptionType       `json:"optionType"`
	OptionPrice *decimal.Decimal `json:"optionPrice,omitempty"`
}

// Validate checks the field constraints of the request.
func (r *ProductOptionRequest) Validate() error {
	verr := &ValidationError{}

	if strings.TrimSpace(r.OptionName) == "" {
		verr.add("optionName", "optionName is required")
	} else {
		checkLength(verr, "optionName", r.OptionName, MaxNameLength)
	}
	switch {
	case r.OptionType == "":
		verr.add("optionType", "optionType is required")
	case !r.OptionType.Valid():
		verr.add("optionType", "optionType must be INPUT or SELECT")
	}
	checkAmount(verr, "optionPrice", r.OptionPrice, false, optionAmountDigits)

	return verr.orNil()
}
