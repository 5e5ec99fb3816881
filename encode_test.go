package powerbill

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func sampleAppData() AppData {
	return AppData{
		Profiles: []Property{
			{
				ID:   "p1",
				Name: "Lake House",
				Type: Home,
				Items: []Meter{
					{
						ID:     "m1",
						Number: "1001",
						Label:  "UKSC 1001",
						// blank tenant, no bill
					},
					{
						ID:     "m2",
						Number: "1002",
						Label:  "Main meter",
						Tenant: Tenant{Name: "Asha", Address: "Flat 4", Phone: "9876543210"},
						LastBill: &BillSnapshot{
							Amount:    decimal.NewFromInt(302),
							Units:     decimal.NewFromInt(46),
							Date:      MustParse("2026-08-29"),
							DueDate:   MustParse("2026-09-12"),
							Status:    Paid,
							FetchedAt: time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC),
						},
					},
				},
			},
			{
				ID:    "p2",
				Name:  "City Flat",
				Type:  Apartment,
				Items: []Meter{},
			},
		},
		APIKey: "secret",
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	want := sampleAppData()

	raw, err := EncodeAppData(want)
	if err != nil {
		t.Fatalf("EncodeAppData() error = %v", err)
	}
	got, err := DecodeAppData(raw)
	if err != nil {
		t.Fatalf("DecodeAppData() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip is not stable got\n%+v\nwant\n%+v", got, want)
	}
}

func TestEncode_CanonicalOrder(t *testing.T) {
	data := AppData{
		Profiles: []Property{
			{ID: "p1", Name: "Lake House", Type: Home, Items: []Meter{
				{ID: "m1", Number: "1001", Label: "UKSC 1001"},
			}},
		},
		APIKey: "k",
	}
	raw, err := EncodeAppData(data)
	if err != nil {
		t.Fatalf("EncodeAppData() error = %v", err)
	}
	want := `{"profiles":[{"id":"p1","name":"Lake House","type":"home","items":[` +
		`{"id":"m1","ukscNumber":"1001","label":"UKSC 1001","tenant":{"name":"","address":"","phone":""}}` +
		`]}],"apiKey":"k"}`
	if string(raw) != want {
		t.Errorf("EncodeAppData() =\n%s\nwant\n%s", raw, want)
	}
}

func TestEncode_EmptyBook(t *testing.T) {
	raw, err := EncodeAppData(AppData{})
	if err != nil {
		t.Fatalf("EncodeAppData() error = %v", err)
	}
	if want := `{"profiles":[],"apiKey":""}`; string(raw) != want {
		t.Errorf("EncodeAppData() = %s, want %s", raw, want)
	}
}

func TestDecode_MissingProfiles(t *testing.T) {
	for _, doc := range []string{
		`{}`,
		`{"apiKey":"k"}`,
		`{"profiles":null}`,
	} {
		var derr *DecodeError
		if _, err := DecodeAppData([]byte(doc)); !errors.As(err, &derr) {
			t.Errorf("DecodeAppData(%q) error = %v, want DecodeError", doc, err)
		}
	}
}

func TestDecode_ProfilesNotSequence(t *testing.T) {
	var derr *DecodeError
	if _, err := DecodeAppData([]byte(`{"profiles":{"id":"p1"}}`)); !errors.As(err, &derr) {
		t.Errorf("DecodeAppData() error = %v, want DecodeError", err)
	}
}

func TestDecode_NotJSON(t *testing.T) {
	var derr *DecodeError
	if _, err := DecodeAppData([]byte(`garbage`)); !errors.As(err, &derr) {
		t.Errorf("DecodeAppData() error = %v, want DecodeError", err)
	}
}

func TestDecode_Tolerance(t *testing.T) {
	// unknown top-level fields are ignored, missing apiKey defaults to "".
	doc := `{"version":3,"profiles":[],"future":{"a":1}}`
	got, err := DecodeAppData([]byte(doc))
	if err != nil {
		t.Fatalf("DecodeAppData() error = %v", err)
	}
	if got.APIKey != "" {
		t.Errorf("apiKey = %q, want empty default", got.APIKey)
	}
	if len(got.Profiles) != 0 {
		t.Errorf("profiles = %+v, want empty", got.Profiles)
	}
}

func TestDecode_ExactShapes(t *testing.T) {
	doc := `{"profiles":[{"id":"p1","name":"City Flat","type":"apartment","items":[
		{"id":"m1","ukscNumber":"0042","label":"Shop","tenant":{"name":"Ravi","address":"Plot 7","phone":""},
		 "lastBill":{"amount":485.5,"units":74,"date":"2026-08-29","dueDate":"2026-09-12","status":"Paid"}}
	]}],"apiKey":"k"}`

	got, err := DecodeAppData([]byte(doc))
	if err != nil {
		t.Fatalf("DecodeAppData() error = %v", err)
	}
	m := got.Profiles[0].Items[0]
	if got.Profiles[0].Type != Apartment {
		t.Errorf("type = %v, want Apartment", got.Profiles[0].Type)
	}
	if m.LastBill.Status != Paid {
		t.Errorf("status = %v, want Paid", m.LastBill.Status)
	}
	if !m.LastBill.Amount.Equal(decimal.RequireFromString("485.5")) {
		t.Errorf("amount = %v, want numeric 485.5", m.LastBill.Amount)
	}
	if !m.LastBill.Units.Equal(decimal.NewFromInt(74)) {
		t.Errorf("units = %v, want numeric 74", m.LastBill.Units)
	}
	if m.LastBill.Date != MustParse("2026-08-29") || m.LastBill.DueDate != MustParse("2026-09-12") {
		t.Errorf("dates = %v / %v", m.LastBill.Date, m.LastBill.DueDate)
	}
	if !m.LastBill.FetchedAt.IsZero() {
		t.Errorf("fetchedAt = %v, want zero when absent", m.LastBill.FetchedAt)
	}
}

func TestDecode_BadEnums(t *testing.T) {
	for _, doc := range []string{
		`{"profiles":[{"id":"p1","name":"x","type":"castle","items":[]}]}`,
		`{"profiles":[{"id":"p1","name":"x","type":"home","items":[
			{"id":"m1","ukscNumber":"1","label":"l","tenant":{},
			 "lastBill":{"amount":1,"units":1,"date":"2026-08-29","dueDate":"2026-09-12","status":"Overdue"}}]}]}`,
	} {
		var derr *DecodeError
		if _, err := DecodeAppData([]byte(doc)); !errors.As(err, &derr) {
			t.Errorf("DecodeAppData(%q) error = %v, want DecodeError", doc, err)
		}
	}
}
