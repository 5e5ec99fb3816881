package powerbill

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// BillSource produces a billing snapshot for a given UKSC service number.
// A fetch may take a noticeable time; callers are free to issue overlapping
// requests for the same meter, the last completed one wins.
type BillSource interface {
	Fetch(ctx context.Context, number string) (BillSnapshot, error)
}

/*
	The simulated provider answers with a payload shaped like:

	{
	    "account": { "uksc": "1001" },
	    "bill": {
	        "amountDue": 302,
	        "unitsConsumed": 46,
	        "status": "Unpaid",
	        "issuedOn": "2026-08-29",
	        "dueOn": "2026-09-12"
	    }
	}
*/

// SimulatedSource is a deterministic stand-in for the utility provider.
// Direct fetching from the real billing site is not possible for a local
// tool (the provider has no public API), so bills are generated from the
// service number: same number, same bill on the same day.
type SimulatedSource struct {
	APIKey string        // forwarded to the provider; unused by the simulation
	Delay  time.Duration // artificial latency, for realism in the UI

	today func() Date // test hook, nil means Today
}

func (s *SimulatedSource) on() Date {
	if s.today != nil {
		return s.today()
	}
	return Today()
}

// Fetch generates the bill snapshot for a service number. It honors ctx
// while waiting out the artificial delay.
func (s *SimulatedSource) Fetch(ctx context.Context, number string) (BillSnapshot, error) {
	if number == "" {
		return BillSnapshot{}, &FetchError{Number: number, Cause: errors.New("empty service number")}
	}

	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return BillSnapshot{}, &FetchError{Number: number, Cause: ctx.Err()}
		}
	}

	payload := simulatedPayload(number, s.on())

	var jobj any
	if err := json.Unmarshal(payload, &jobj); err != nil {
		return BillSnapshot{}, &FetchError{Number: number, Cause: err}
	}

	amount, err := jsonpathFloat(jobj, "$.bill.amountDue")
	if err != nil {
		return BillSnapshot{}, &FetchError{Number: number, Cause: err}
	}
	units, err := jsonpathFloat(jobj, "$.bill.unitsConsumed")
	if err != nil {
		return BillSnapshot{}, &FetchError{Number: number, Cause: err}
	}
	status, err := jsonpathString(jobj, "$.bill.status")
	if err != nil {
		return BillSnapshot{}, &FetchError{Number: number, Cause: err}
	}
	issued, err := jsonpathString(jobj, "$.bill.issuedOn")
	if err != nil {
		return BillSnapshot{}, &FetchError{Number: number, Cause: err}
	}
	due, err := jsonpathString(jobj, "$.bill.dueOn")
	if err != nil {
		return BillSnapshot{}, &FetchError{Number: number, Cause: err}
	}

	st, err := ParseBillStatus(status)
	if err != nil {
		return BillSnapshot{}, &FetchError{Number: number, Cause: err}
	}
	issuedOn, err := ParseDate(issued)
	if err != nil {
		return BillSnapshot{}, &FetchError{Number: number, Cause: err}
	}
	dueOn, err := ParseDate(due)
	if err != nil {
		return BillSnapshot{}, &FetchError{Number: number, Cause: err}
	}

	return BillSnapshot{
		Amount:    decimal.NewFromFloat(amount),
		Units:     decimal.NewFromFloat(units),
		Date:      issuedOn,
		DueDate:   dueOn,
		Status:    st,
		FetchedAt: time.Now().UTC().Truncate(time.Second),
	}, nil
}

// simulatedPayload builds the provider answer for a service number on a
// given day. The seed comes from the last three digits of the number, so
// the generated figures look plausible and stay stable per meter.
func simulatedPayload(number string, on Date) []byte {
	last := number
	if len(last) > 3 {
		last = last[len(last)-3:]
	}
	seed, err := strconv.Atoi(last)
	if err != nil || seed == 0 {
		seed = 123
	}

	amount := math.Round(float64(seed)*1.5 + 300)
	units := math.Floor(amount / 6.5)
	status := "Unpaid"
	if seed%3 == 0 {
		status = "Paid"
	}

	return fmt.Appendf(nil,
		`{"account":{"uksc":%q},"bill":{"amountDue":%d,"unitsConsumed":%d,"status":%q,"issuedOn":%q,"dueOn":%q}}`,
		number, int64(amount), int64(units), status, on.String(), on.Add(DueOffsetDays).String())
}

func jsonpathFloat(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing payload: %q %w", path, err)
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing payload: %q not a number: %v", path, jval)
	}
	return val, nil
}

func jsonpathString(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("error parsing payload: %q %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("error parsing payload: %q not a string: %v", path, jval)
	}
	return val, nil
}
