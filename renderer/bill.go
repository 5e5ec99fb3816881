package renderer

import (
	"github.com/nshetty/powerbill"
)

// Bill renders a meter and its bill snapshot to a markdown receipt.
func Bill(m powerbill.Meter, bill powerbill.BillSnapshot) string {
	receipt := BillReceipt{
		Number:        m.Number,
		Label:         m.Label,
		TenantName:    orNA(m.Tenant.Name),
		TenantAddress: orNA(m.Tenant.Address),
		TenantPhone:   orNA(m.Tenant.Phone),
		Date:          bill.Date.Format("02 Jan 2006"),
		DueDate:       bill.DueDate.Format("02 Jan 2006"),
		Units:         bill.Units.String(),
		Status:        bill.Status.String(),
		Amount:        bill.AmountMoney().String(),
	}
	return renderTemplate("bill", "bill.md", receipt)
}

// orNA substitutes blank tenant fields on the receipt.
func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
