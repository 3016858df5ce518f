package plan_models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ActivityType is the closed set of activity kinds the generator may emit.
type ActivityType string

const (
	ActivityAttraction     ActivityType = "Attraction"
	ActivityRestaurant     ActivityType = "Restaurant"
	ActivityTransportation ActivityType = "Transportation"
	ActivityHotel          ActivityType = "Hotel"
	ActivityShopping       ActivityType = "Shopping"
	ActivityOther          ActivityType = "Other"
)

// ActivityTypes lists every valid activity type, in schema order.
var ActivityTypes = []ActivityType{
	ActivityAttraction,
	ActivityRestaurant,
	ActivityTransportation,
	ActivityHotel,
	ActivityShopping,
	ActivityOther,
}

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityAttraction, ActivityRestaurant, ActivityTransportation,
		ActivityHotel, ActivityShopping, ActivityOther:
		return true
	}
	return false
}

// Marker returns the overlay icon name for the type. Exhaustive on purpose:
// a new type must pick an icon here or it does not compile into the map layer.
func (t ActivityType) Marker() string {
	switch t {
	case ActivityAttraction:
		return "marker-attraction"
	case ActivityRestaurant:
		return "marker-restaurant"
	case ActivityTransportation:
		return "marker-transport"
	case ActivityHotel:
		return "marker-hotel"
	case ActivityShopping:
		return "marker-shopping"
	case ActivityOther:
		return "marker-generic"
	}
	return "marker-generic"
}

// BudgetCategory is the closed set of budget breakdown categories.
type BudgetCategory string

const (
	BudgetTransportation BudgetCategory = "Transportation"
	BudgetAccommodation  BudgetCategory = "Accommodation"
	BudgetFood           BudgetCategory = "Food"
	BudgetActivities     BudgetCategory = "Activities"
	BudgetShopping       BudgetCategory = "Shopping"
	BudgetOther          BudgetCategory = "Other"
)

var BudgetCategories = []BudgetCategory{
	BudgetTransportation,
	BudgetAccommodation,
	BudgetFood,
	BudgetActivities,
	BudgetShopping,
	BudgetOther,
}

func (c BudgetCategory) Valid() bool {
	switch c {
	case BudgetTransportation, BudgetAccommodation, BudgetFood,
		BudgetActivities, BudgetShopping, BudgetOther:
		return true
	}
	return false
}

// Location is a BD-09 coordinate pair. BD-09 is a hard requirement of the
// rendering surface: any other frame places pins wrong with no error signal.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type ActivityDetails struct {
	Address      string `json:"address,omitempty"`
	OpeningHours string `json:"openingHours,omitempty"`
	TicketPrice  string `json:"ticketPrice,omitempty"`
}

type Activity struct {
	Time        string           `json:"time"`
	Type        ActivityType     `json:"type"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Location    *Location        `json:"location,omitempty"`
	Details     *ActivityDetails `json:"details,omitempty"`
}

type DayPlan struct {
	Day        int        `json:"day"`
	Theme      string     `json:"theme"`
	Activities []Activity `json:"activities"`
}

type BudgetItem struct {
	Category BudgetCategory `json:"category"`
	Amount   float64        `json:"amount"`
}

type Budget struct {
	Total     float64      `json:"total"`
	Breakdown []BudgetItem `json:"breakdown"`
}

// TripPlan is the validated itinerary shared by the timeline and the map
// engine. It is immutable once handed out; updates replace the whole plan.
type TripPlan struct {
	Title        string    `json:"title"`
	Destinations []string  `json:"destinations,omitempty"`
	Budget       Budget    `json:"budget"`
	Days         []DayPlan `json:"days"`
}

// PlaceDetails is the reply shape of the single-place lookup.
type PlaceDetails struct {
	Description string           `json:"description"`
	Location    *Location        `json:"location,omitempty"`
	Details     *ActivityDetails `json:"details,omitempty"`
}

var timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// Validate checks the structural invariants of the plan grammar: closed
// enums, positive unique ascending day numbers, HH:MM activity times and
// non-negative budget amounts. The budget total is accepted as-is; it is
// never reconciled against the breakdown sum.
func (p *TripPlan) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return errors.New("plan title is empty")
	}
	if p.Budget.Total < 0 {
		return fmt.Errorf("budget total is negative: %v", p.Budget.Total)
	}
	for i, item := range p.Budget.Breakdown {
		if !item.Category.Valid() {
			return fmt.Errorf("budget item %d: unknown category %q", i+1, item.Category)
		}
		if item.Amount < 0 {
			return fmt.Errorf("budget item %d (%s): negative amount", i+1, item.Category)
		}
	}
	lastDay := 0
	for i, day := range p.Days {
		if day.Day <= 0 {
			return fmt.Errorf("day %d: day number must be positive, got %d", i+1, day.Day)
		}
		if day.Day <= lastDay {
			return fmt.Errorf("day numbers must be unique and ascending, got %d after %d", day.Day, lastDay)
		}
		lastDay = day.Day
		for j, act := range day.Activities {
			if !act.Type.Valid() {
				return fmt.Errorf("day %d activity %d: unknown type %q", day.Day, j+1, act.Type)
			}
			if strings.TrimSpace(act.Name) == "" {
				return fmt.Errorf("day %d activity %d: name is empty", day.Day, j+1)
			}
			if act.Time != "" && !timePattern.MatchString(act.Time) {
				return fmt.Errorf("day %d activity %d: time %q is not HH:MM", day.Day, j+1, act.Time)
			}
		}
	}
	return nil
}

// LocatedActivities flattens the plan into activities that carry a location,
// in timeline order. This is the overlay source for the map engine.
func (p *TripPlan) LocatedActivities() []Activity {
	var out []Activity
	for _, day := range p.Days {
		for _, act := range day.Activities {
			if act.Location != nil {
				out = append(out, act)
			}
		}
	}
	return out
}

// Value / Scan let the full plan ride in a jsonb column.
func (p TripPlan) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *TripPlan) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	case nil:
		*p = TripPlan{}
		return nil
	default:
		return fmt.Errorf("unsupported plan column type %T", value)
	}
}
