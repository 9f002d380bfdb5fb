package tui

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/tripcost/internal/cli"
	"github.com/theirongolddev/tripcost/internal/model"
	"github.com/theirongolddev/tripcost/internal/planner"

	"github.com/charmbracelet/huh"
)

// planAnswers is bound to the huh form fields. It lives on the heap so
// copies of App share it.
type planAnswers struct {
	Route      string
	Transport  string
	Hotel      string
	Days       int
	Passengers int
	Budget     string
}

func answersFrom(req model.TripRequest) *planAnswers {
	return &planAnswers{
		Route:      req.Route,
		Transport:  req.Transport,
		Hotel:      req.Hotel,
		Days:       req.Days,
		Passengers: req.Passengers,
		Budget:     strconv.FormatFloat(req.Budget, 'f', -1, 64),
	}
}

// request converts the form answers into a planner request.
func (a *planAnswers) request() (model.TripRequest, error) {
	budget, err := parseBudget(a.Budget)
	if err != nil {
		return model.TripRequest{}, err
	}
	return model.TripRequest{
		Route:      a.Route,
		Transport:  a.Transport,
		Hotel:      a.Hotel,
		Days:       a.Days,
		Passengers: a.Passengers,
		Budget:     budget,
	}, nil
}

// parseBudget accepts "3000", "3,000" or "3000.50".
func parseBudget(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, errors.New("budget is required")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("budget %q is not a number", s)
	}
	return v, nil
}

func budgetValidator(l planner.Limits) func(string) error {
	return func(s string) error {
		v, err := parseBudget(s)
		if err != nil {
			return err
		}
		if math.IsNaN(v) || v < l.MinBudget || v > l.MaxBudget {
			return &planner.RangeError{Field: planner.FieldBudget, Value: v, Min: l.MinBudget, Max: l.MaxBudget}
		}
		return nil
	}
}

func intOptions(lo, hi int, unit string) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, max(0, hi-lo+1))
	for n := lo; n <= hi; n++ {
		opts = append(opts, huh.NewOption(cli.Pluralize(n, unit), n))
	}
	return opts
}

// newPlanForm builds the two-page trip form over the planner's catalog.
func newPlanForm(p *planner.Planner, ans *planAnswers, currency string) *huh.Form {
	cat := p.Catalog()
	lim := p.Limits()

	var routeOpts []huh.Option[string]
	for _, r := range cat.Routes() {
		routeOpts = append(routeOpts, huh.NewOption(
			fmt.Sprintf("%s  (%s)", r.Name, cli.FormatRoute(r.Cities)), r.Key))
	}
	var transportOpts []huh.Option[string]
	for _, t := range cat.Transports() {
		transportOpts = append(transportOpts, huh.NewOption(
			fmt.Sprintf("%s  %s/km per person", t.Name, cli.FormatMoney(t.Rate, currency)), t.Key))
	}
	var hotelOpts []huh.Option[string]
	for _, h := range cat.Hotels() {
		hotelOpts = append(hotelOpts, huh.NewOption(
			fmt.Sprintf("%s  %s/night per person", h.Label, cli.FormatMoney(h.Rate, currency)), h.Key))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Route").
				Options(routeOpts...).
				Value(&ans.Route),
			huh.NewSelect[string]().
				Title("Transport").
				Options(transportOpts...).
				Value(&ans.Transport),
			huh.NewSelect[string]().
				Title("Hotel tier").
				Options(hotelOpts...).
				Value(&ans.Hotel),
		).Title("Where and how"),

		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Trip length").
				Options(intOptions(lim.MinDays, lim.MaxDays, "day")...).
				Value(&ans.Days),
			huh.NewSelect[int]().
				Title("Passengers").
				Options(intOptions(lim.MinPassengers, lim.MaxPassengers, "passenger")...).
				Value(&ans.Passengers),
			huh.NewInput().
				Title("Budget").
				Description(fmt.Sprintf("Between %s and %s",
					cli.FormatMoney(lim.MinBudget, currency), cli.FormatMoney(lim.MaxBudget, currency))).
				Value(&ans.Budget).
				Validate(budgetValidator(lim)),
		).Title("Trip details"),
	).WithTheme(huh.ThemeCharm()).WithShowHelp(true)
}
