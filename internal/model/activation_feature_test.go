package model_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"frankit/internal/model"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
)

type activationTestContext struct {
	product     *model.Product
	option      *model.ProductOption
	activeCount int
	err         error
}

func (c *activationTestContext) reset() {
	c.product = nil
	c.option = nil
	c.activeCount = 0
	c.err = nil
}

func (c *activationTestContext) aProductInState(state string) error {
	c.product = model.NewProduct("Phone", "A phone", decimal.NewFromInt(1000000), decimal.NewFromInt(3000))
	if state == "inactive" {
		c.product.Deactivate()
	}
	return nil
}

func (c *activationTestContext) iActivateTheProduct() error {
	c.err = c.product.Activate()
	return nil
}

func (c *activationTestContext) iDeactivateTheProduct() error {
	c.product.Deactivate()
	return nil
}

func (c *activationTestContext) theProductIsInactive() error {
	if c.product.IsActive {
		return errors.New("expected product to be inactive")
	}
	return nil
}

func (c *activationTestContext) theProductDeletableWithOrdersIs(orders, deletable string) error {
	got := c.product.IsDeletable(orders == "true")
	if fmt.Sprint(got) != deletable {
		return fmt.Errorf("expected deletable=%s, got %t", deletable, got)
	}
	return nil
}

func (c *activationTestContext) aSelectOptionWithDetails(state string, n int) error {
	c.option = model.NewProductOption(1, "Color", model.OptionTypeSelect, nil)
	c.option.ID = 1
	for i := 0; i < n; i++ {
		d, err := model.NewOptionDetail(c.option, fmt.Sprintf("detail-%d", i+1), decimal.NewFromInt(int64(i)))
		if err != nil {
			return err
		}
		c.option.Details = append(c.option.Details, d)
	}
	if state == "inactive" {
		c.option.Deactivate()
	}
	return nil
}

func (c *activationTestContext) anActiveInputOption() error {
	price := decimal.NewFromInt(1000)
	c.option = model.NewProductOption(1, "Engraving", model.OptionTypeInput, &price)
	return nil
}

func (c *activationTestContext) theProductHasActiveOptions(n int) error {
	c.activeCount = n
	return nil
}

func (c *activationTestContext) theOptionIsDeactivated() error {
	c.option.Deactivate()
	return nil
}

func (c *activationTestContext) iActivateTheOption() error {
	c.err = c.option.Activate(c.activeCount)
	return nil
}

func (c *activationTestContext) iDeactivateTheOption() error {
	c.option.Deactivate()
	return nil
}

func (c *activationTestContext) iAddADetailNamed(name string) error {
	_, c.err = model.NewOptionDetail(c.option, name, decimal.Zero)
	return nil
}

func (c *activationTestContext) iActivateDetail(n int) error {
	if n < 1 || n > len(c.option.Details) {
		return fmt.Errorf("option has no detail %d", n)
	}
	c.err = c.option.Details[n-1].Activate(c.option)
	return nil
}

func (c *activationTestContext) theOperationFailsWith(code string) error {
	if c.err == nil {
		return fmt.Errorf("expected %s, got success", code)
	}
	de, ok := model.AsDomainError(c.err)
	if !ok {
		return fmt.Errorf("expected domain error %s, got %v", code, c.err)
	}
	if de.Code != code {
		return fmt.Errorf("expected %s, got %s", code, de.Code)
	}
	return nil
}

func (c *activationTestContext) theOperationSucceeds() error {
	if c.err != nil {
		return fmt.Errorf("expected success, got %v", c.err)
	}
	return nil
}

func (c *activationTestContext) theOptionIs(state string) error {
	if c.option.IsActive != (state == "active") {
		return fmt.Errorf("expected option to be %s", state)
	}
	return nil
}

func (c *activationTestContext) allDetailsAre(state string) error {
	want := state == "active"
	for i, d := range c.option.Details {
		if d.IsActive != want {
			return fmt.Errorf("expected detail %d to be %s", i+1, state)
		}
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &activationTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an (active|inactive) product$`, tc.aProductInState)
	ctx.Step(`^an (active|inactive) SELECT option with (\d+) details$`, tc.aSelectOptionWithDetails)
	ctx.Step(`^an active INPUT option$`, tc.anActiveInputOption)
	ctx.Step(`^the product has (\d+) active options$`, tc.theProductHasActiveOptions)
	ctx.Step(`^the option is deactivated$`, tc.theOptionIsDeactivated)

	// When steps
	ctx.Step(`^I activate the product$`, tc.iActivateTheProduct)
	ctx.Step(`^I deactivate the product$`, tc.iDeactivateTheProduct)
	ctx.Step(`^I activate the option$`, tc.iActivateTheOption)
	ctx.Step(`^I deactivate the option$`, tc.iDeactivateTheOption)
	ctx.Step(`^I add a detail named "([^"]*)"$`, tc.iAddADetailNamed)
	ctx.Step(`^I activate detail (\d+)$`, tc.iActivateDetail)

	// Then steps
	ctx.Step(`^the operation fails with "([^"]*)"$`, tc.theOperationFailsWith)
	ctx.Step(`^the operation succeeds$`, tc.theOperationSucceeds)
	ctx.Step(`^the product is inactive$`, tc.theProductIsInactive)
	ctx.Step(`^the product deletable with orders (true|false) is (true|false)$`, tc.theProductDeletableWithOrdersIs)
	ctx.Step(`^the option is (active|inactive)$`, tc.theOptionIs)
	ctx.Step(`^all details are (active|inactive)$`, tc.allDetailsAre)
}

func TestActivationFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"testdata/activation.feature"},
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
