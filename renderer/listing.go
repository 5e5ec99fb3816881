package renderer

import (
	"github.com/nshetty/powerbill"
)

// propertyRow is the view model for one line of the properties listing.
type propertyRow struct {
	ID     string
	Name   string
	Type   string
	Meters int
}

// meterRow is the view model for one line of the meters listing.
type meterRow struct {
	ID     string
	Number string
	Label  string
	Tenant string
	Bill   string
}

// Properties renders all properties of the book as a markdown table.
func Properties(properties []powerbill.Property) string {
	rows := make([]propertyRow, 0, len(properties))
	for _, p := range properties {
		rows = append(rows, propertyRow{
			ID:     p.ID,
			Name:   p.Name,
			Type:   p.Type.String(),
			Meters: len(p.Items),
		})
	}
	return renderTemplate("properties", "properties.md", rows)
}

// Meters renders a property's meters as a markdown table.
func Meters(p powerbill.Property) string {
	rows := make([]meterRow, 0, len(p.Items))
	for _, m := range p.Items {
		row := meterRow{
			ID:     m.ID,
			Number: m.Number,
			Label:  m.Label,
			Tenant: m.Tenant.Name,
		}
		if m.LastBill != nil {
			row.Bill = m.LastBill.AmountMoney().String() + " " + m.LastBill.Status.String()
		}
		rows = append(rows, row)
	}
	data := struct {
		Name string
		Rows []meterRow
	}{Name: p.Name, Rows: rows}
	return renderTemplate("meters", "meters.md", data)
}
