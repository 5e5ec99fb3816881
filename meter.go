package powerbill

// Meter is one billable utility account record: an external UKSC service
// number, a display label, tenant details and the latest bill snapshot.
// A meter lives inside exactly one property's item list.
type Meter struct {
	ID       string // opaque, unique across the whole book
	Number   string // UKSC service number, user-editable, not unique
	Label    string
	Tenant   Tenant
	LastBill *BillSnapshot // nil until a bill has been fetched
}

// DefaultLabel derives the display label given to a freshly added meter.
func DefaultLabel(number string) string {
	return "UKSC " + number
}

// MeterUpdate describes a partial update of a meter. Only non-nil fields
// are applied; a nil field leaves the meter's value untouched. Tenant is
// replaced as a whole, there is no field-level merge.
type MeterUpdate struct {
	Number   *string
	Label    *string
	Tenant   *Tenant
	LastBill *BillSnapshot
}

func (u MeterUpdate) apply(m *Meter) {
	if u.Number != nil {
		m.Number = *u.Number
	}
	if u.Label != nil {
		m.Label = *u.Label
	}
	if u.Tenant != nil {
		m.Tenant = *u.Tenant
	}
	if u.LastBill != nil {
		bill := *u.LastBill
		m.LastBill = &bill
	}
}

// clone returns a deep copy of the meter, safe to hand to callers.
func (m Meter) clone() Meter {
	c := m
	if m.LastBill != nil {
		bill := *m.LastBill
		c.LastBill = &bill
	}
	return c
}
