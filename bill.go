package powerbill

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DueOffsetDays is the fixed number of days between the billing date and
// the payment due date.
const DueOffsetDays = 14

// BillStatus is the payment status of a bill snapshot.
type BillStatus int

const (
	// Unpaid means the bill is still pending payment.
	Unpaid BillStatus = iota
	// Paid means the bill has been settled.
	Paid
)

func (s BillStatus) String() string {
	switch s {
	case Unpaid:
		return "Unpaid"
	case Paid:
		return "Paid"
	default:
		return "unknown"
	}
}

// ParseBillStatus parses a string into a BillStatus.
func ParseBillStatus(s string) (BillStatus, error) {
	switch s {
	case "Unpaid":
		return Unpaid, nil
	case "Paid":
		return Paid, nil
	default:
		return 0, fmt.Errorf("unknown bill status: %q", s)
	}
}

func (s BillStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *BillStatus) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	v, err := ParseBillStatus(str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// BillSnapshot is a point-in-time billing readout for a meter. It is
// immutable once created; a meter holds at most one, the latest.
type BillSnapshot struct {
	Amount    decimal.Decimal // total due, never negative
	Units     decimal.Decimal // units consumed, never negative
	Date      Date            // billing date
	DueDate   Date            // Date + DueOffsetDays
	Status    BillStatus
	FetchedAt time.Time // when the snapshot was captured
}

// AmountMoney returns the bill total as a formattable monetary value.
func (b BillSnapshot) AmountMoney() Money {
	return M(b.Amount, BillCurrency)
}

// Equal reports whether two snapshots carry the same readout.
func (b BillSnapshot) Equal(o BillSnapshot) bool {
	return b.Amount.Equal(o.Amount) &&
		b.Units.Equal(o.Units) &&
		b.Date == o.Date &&
		b.DueDate == o.DueDate &&
		b.Status == o.Status &&
		b.FetchedAt.Equal(o.FetchedAt)
}
