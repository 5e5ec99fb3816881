package powerbill

import (
	"encoding/json"
	"fmt"
)

// PropertyType classifies a physical site.
type PropertyType int

const (
	// Home is an individual house.
	Home PropertyType = iota
	// Apartment is a flat in a larger building.
	Apartment
)

func (t PropertyType) String() string {
	switch t {
	case Home:
		return "home"
	case Apartment:
		return "apartment"
	default:
		return "unknown"
	}
}

// ParsePropertyType parses a string into a PropertyType.
func ParsePropertyType(s string) (PropertyType, error) {
	switch s {
	case "home":
		return Home, nil
	case "apartment":
		return Apartment, nil
	default:
		return 0, fmt.Errorf("unknown property type: %q", s)
	}
}

func (t PropertyType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *PropertyType) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	v, err := ParsePropertyType(str)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Property is a physical site grouping one or more meters. The item order
// is the display order and is preserved across save and restore.
type Property struct {
	ID    string
	Name  string
	Type  PropertyType
	Items []Meter
}

// clone returns a deep copy of the property, safe to hand to callers.
func (p Property) clone() Property {
	c := p
	c.Items = make([]Meter, len(p.Items))
	for i, m := range p.Items {
		c.Items[i] = m.clone()
	}
	return c
}
