package models

import (
	"encoding/json"
	"fmt"
)

// Car represents a single car record
type Car struct {
	ID       string      `json:"_id"`
	Image    string      `json:"image"`
	Make     string      `json:"make"`
	Model    string      `json:"model"`
	Descript string      `json:"descript"`
	Year     int         `json:"year"`
	Color    string      `json:"color"`
	IsNew    bool        `json:"isNew"`
	NumDoors int         `json:"numDoors"`
	Worth    interface{} `json:"worth"` // stored as provided
}

// CarPatch carries the fields of a partial update. A nil field was absent
// from the request body and is left untouched when applied.
type CarPatch struct {
	Image    *string         `json:"image,omitempty"`
	Make     *string         `json:"make,omitempty"`
	Model    *string         `json:"model,omitempty"`
	Descript *string         `json:"descript,omitempty"`
	Year     *int            `json:"year,omitempty"`
	Color    *string         `json:"color,omitempty"`
	IsNew    *bool           `json:"isNew,omitempty"`
	NumDoors *int            `json:"numDoors,omitempty"`
	Worth    json.RawMessage `json:"worth,omitempty"`
}

// IsEmpty reports whether the patch changes nothing
func (p CarPatch) IsEmpty() bool {
	return p.Image == nil && p.Make == nil && p.Model == nil && p.Descript == nil &&
		p.Year == nil && p.Color == nil && p.IsNew == nil && p.NumDoors == nil &&
		len(p.Worth) == 0
}

// Apply merges the present fields of the patch into car
func (p CarPatch) Apply(car *Car) error {
	if p.Image != nil {
		car.Image = *p.Image
	}
	if p.Make != nil {
		car.Make = *p.Make
	}
	if p.Model != nil {
		car.Model = *p.Model
	}
	if p.Descript != nil {
		car.Descript = *p.Descript
	}
	if p.Year != nil {
		car.Year = *p.Year
	}
	if p.Color != nil {
		car.Color = *p.Color
	}
	if p.IsNew != nil {
		car.IsNew = *p.IsNew
	}
	if p.NumDoors != nil {
		car.NumDoors = *p.NumDoors
	}
	if len(p.Worth) > 0 {
		var worth interface{}
		if err := json.Unmarshal(p.Worth, &worth); err != nil {
			return fmt.Errorf("invalid worth: %w", err)
		}
		car.Worth = worth
	}
	return nil
}
