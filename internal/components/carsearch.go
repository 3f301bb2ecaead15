package components

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"driveshare/internal/domain"
)

// BookNowLabel is the label of the button on every search result
const BookNowLabel = "Book Now"

// BookButton is the "Book Now" button of a result, tagged with its car id
type BookButton struct {
	Label string
	CarID string
}

// ResultEntry is one rendered search result
type ResultEntry struct {
	Title    string
	Price    string
	Location string
	Button   BookButton
}

// SearchForm is the submitted car search form
type SearchForm struct {
	Location  string
	StartDate string
	EndDate   string
}

// CarSearchState holds the rendered results
type CarSearchState struct {
	Results []ResultEntry
}

// CarSearch lists cars and turns "Book Now" presses into booking requests
type CarSearch struct {
	deps   Deps
	logger *slog.Logger
	state  CarSearchState
}

// NewCarSearch creates and registers the car search component
func NewCarSearch(d Deps) *CarSearch {
	d = d.withDefaults()
	c := &CarSearch{deps: d, logger: d.Logger.With("component", NameCarSearch)}
	d.Mediator.RegisterComponent(NameCarSearch, c)

	d.Mediator.On(domain.EventCarListingCreated, func(domain.Event) {
		c.Fetch()
	})
	return c
}

// State returns a copy of the search state
func (c *CarSearch) State() CarSearchState {
	results := make([]ResultEntry, len(c.state.Results))
	copy(results, c.state.Results)
	return CarSearchState{Results: results}
}

// Submit handles the search form
func (c *CarSearch) Submit(form SearchForm) {
	c.deps.Mediator.Notify(domain.CarSearchSubmitted{
		Location:  form.Location,
		StartDate: form.StartDate,
		EndDate:   form.EndDate,
	})
	c.fetch(form.Location)
}

// Fetch loads cars using the location currently in the search form
func (c *CarSearch) Fetch() {
	location := ""
	if c.deps.Forms != nil {
		location = c.deps.Forms.Value(FormSearch, FieldLocation)
	}
	c.fetch(location)
}

func (c *CarSearch) fetch(location string) {
	c.deps.Loop.Go(func(ctx context.Context) func() {
		cars, err := c.deps.API.SearchCars(ctx, location)
		return func() {
			if err != nil {
				c.logger.Error("failed to fetch cars", "location", location, "error", err)
				return
			}
			c.logger.Debug("fetched cars", "count", len(cars))
			c.displayResults(cars)
		}
	})
}

// RequestBooking handles a press on a result's "Book Now" button
func (c *CarSearch) RequestBooking(carID string) {
	c.deps.Mediator.Notify(domain.BookingRequested{CarID: carID})
}

func (c *CarSearch) displayResults(cars []domain.Car) {
	results := make([]ResultEntry, 0, len(cars))
	for _, car := range cars {
		results = append(results, ResultEntry{
			Title:    fmt.Sprintf("%s %s (%d)", car.Make, car.Model, car.Year),
			Price:    fmt.Sprintf("$%s per day", strconv.FormatFloat(car.PricePerDay, 'f', -1, 64)),
			Location: "Location: " + car.Location,
			Button: BookButton{
				Label: BookNowLabel,
				CarID: strconv.Itoa(car.ID),
			},
		})
	}
	c.state.Results = results
}
