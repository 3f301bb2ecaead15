package components

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"driveshare/internal/api"
	"driveshare/internal/domain"
)

// CarListingForm is the submitted "list a car" form, as typed
type CarListingForm struct {
	Make        string
	Model       string
	Year        string
	PricePerDay string
	Location    string
}

// CarListingState tracks the listing dialog
type CarListingState struct {
	ModalOpen bool
}

// CarListing lets a host put a car on the marketplace
type CarListing struct {
	deps   Deps
	logger *slog.Logger
	state  CarListingState
}

// NewCarListing creates and registers the car listing component
func NewCarListing(d Deps) *CarListing {
	d = d.withDefaults()
	c := &CarListing{deps: d, logger: d.Logger.With("component", NameCarListing)}
	d.Mediator.RegisterComponent(NameCarListing, c)
	if d.Forms == nil {
		c.logger.Error("car listing form binding missing; submissions cannot reset the form")
	}
	return c
}

// State returns a copy of the listing state
func (c *CarListing) State() CarListingState {
	return c.state
}

// ShowModal opens the listing dialog
func (c *CarListing) ShowModal() {
	c.logger.Debug("opening car listing modal")
	c.state.ModalOpen = true
}

// CloseModal closes the listing dialog
func (c *CarListing) CloseModal() {
	c.state.ModalOpen = false
}

// Submit validates the form and lists the car
func (c *CarListing) Submit(form CarListingForm) {
	car, ok := c.parse(form)
	if !ok {
		return
	}

	c.deps.Loop.Go(func(ctx context.Context) func() {
		res, err := c.deps.API.ListCar(ctx, car)
		return func() {
			if err != nil {
				c.logger.Error("failed to list car", "error", err)
				c.deps.notify(domain.SeverityError, failureText(err, "Failed to list car.", networkCarListingText))
				return
			}
			msg := res.Message
			if msg == "" {
				msg = "Car listed successfully!"
			}
			c.deps.notify(domain.SeveritySuccess, msg)
			c.CloseModal()
			c.deps.resetForm(c.logger, FormCarListing)
			c.deps.Mediator.Notify(domain.CarListingCreated{})
		}
	})
}

func (c *CarListing) parse(form CarListingForm) (api.NewCar, bool) {
	year, err := strconv.Atoi(strings.TrimSpace(form.Year))
	if err != nil {
		c.deps.notify(domain.SeverityError, "Year must be a whole number.")
		return api.NewCar{}, false
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(form.PricePerDay), 64)
	if err != nil {
		c.deps.notify(domain.SeverityError, "Price per day must be a number.")
		return api.NewCar{}, false
	}
	return api.NewCar{
		Make:        form.Make,
		Model:       form.Model,
		Year:        year,
		PricePerDay: price,
		Location:    form.Location,
	}, true
}
