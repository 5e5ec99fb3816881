package powerbill

// Tenant holds the contact details of the person occupying the premises a
// meter serves. All fields are optional; a blank Tenant is a valid value.
// A Tenant has no identity of its own: it is owned by exactly one Meter.
type Tenant struct {
	Name    string `json:"name"`
	Address string `json:"address"` // flat or plot designator
	Phone   string `json:"phone"`
}
