package renderer

// BillReceipt is the view model for a rendered bill receipt.
type BillReceipt struct {
	Number        string // UKSC service number
	Label         string
	TenantName    string
	TenantAddress string
	TenantPhone   string
	Date          string
	DueDate       string
	Units         string
	Status        string
	Amount        string // formatted with currency sign
}
