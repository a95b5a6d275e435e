package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OptionDetail is one selectable value of a SELECT option.
type OptionDetail struct {
	ID          int64           `json:"id" db:"id"`
	OptionID    int64           `json:"optionId" db:"option_id"`
	DetailName  string          `json:"detailName" db:"detail_name"`
	DetailPrice decimal.Decimal `json:"detailPrice" db:"detail_price"`
	IsActive    bool            `json:"isActive" db:"is_active"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at"`
}

// NewOptionDetail builds a detail under option. It starts active only when the option is
// active. INPUT options cannot have details.
func NewOptionDetail(option *ProductOption, name string, price decimal.Decimal) (*OptionDetail, error) {
	if option.OptionType == OptionTypeInput {
		return nil, ErrOptionCannotHaveDetails
	}
	return &OptionDetail{
		OptionID:    option.ID,
		DetailName:  name,
		DetailPrice: price,
		IsActive:    option.IsActive,
	}, nil
}

// Activate turns the detail on. The parent option must be active.
func (d *OptionDetail) Activate(parent *ProductOption) error {
	if !parent.IsActive {
		return ErrOptionDetailCannotBeActivated
	}
	d.IsActive = true
	return nil
}

// Deactivate turns the detail off.
func (d *OptionDetail) Deactivate() {
	d.IsActive = false
}

// IsUpdatable reports whether the detail may be edited.
func (d *OptionDetail) IsUpdatable(hasOrder bool) bool {
	return !hasOrder
}

// IsDeletable reports whether the detail may be removed.
func (d *OptionDetail) IsDeletable(hasOrder bool) bool {
	return !hasOrder
}

// Update replaces name and price unless the detail has been ordered.
func (d *OptionDetail) Update(name string, price decimal.Decimal, hasOrder bool) error {
	if !d.IsUpdatable(hasOrder) {
		return ErrOptionDetailCannotBeUpdated
	}
	d.DetailName = name
	d.DetailPrice = price
	return nil
}

// OptionDetailRequest represents the request payload for creating or updating a detail.
type OptionDetailRequest struct {
	DetailName  string           `json:"detailName"`
	DetailPrice *decimal.Decimal `json:"detailPrice"`
}

// Validate checks the field constraints of the request.
func (r *OptionDetailRequest) Validate() error {
	verr := &ValidationError{}

	if strings.TrimSpace(r.DetailName) == "" {
		verr.add("detailName", "detailName is required")
	} else {
		checkLength(verr, "detailName", r.DetailName, MaxNameLength)
	}
	checkAmount(verr, "detailPrice", r.DetailPrice, true, optionAmountDigits)

	return verr.orNil()
}
