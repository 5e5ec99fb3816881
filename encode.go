package powerbill

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file contains the code to persist the whole book as a single JSON
// document, in a way that is still human-readable and stable: keys are
// written in a canonical order so that two saves of the same book produce
// the same bytes.

func (b BillSnapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("amount", b.Amount)
	w.Append("units", b.Units)
	w.Append("date", b.Date)
	w.Append("dueDate", b.DueDate)
	w.Append("status", b.Status)
	if !b.FetchedAt.IsZero() {
		w.Append("fetchedAt", b.FetchedAt.UTC().Format(time.RFC3339))
	}
	return w.MarshalJSON()
}

func (m Meter) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", m.ID)
	w.Append("ukscNumber", m.Number)
	w.Append("label", m.Label)
	w.Append("tenant", m.Tenant)
	if m.LastBill != nil {
		w.Append("lastBill", m.LastBill)
	}
	return w.MarshalJSON()
}

func (p Property) MarshalJSON() ([]byte, error) {
	items := p.Items
	if items == nil {
		items = []Meter{}
	}
	var w jsonObjectWriter
	w.Append("id", p.ID)
	w.Append("name", p.Name)
	w.Append("type", p.Type)
	w.Append("items", items)
	return w.MarshalJSON()
}

// EncodeAppData encodes the whole book into the persisted document format.
func EncodeAppData(data AppData) ([]byte, error) {
	profiles := data.Profiles
	if profiles == nil {
		profiles = []Property{}
	}
	var w jsonObjectWriter
	w.Append("profiles", profiles)
	w.Append("apiKey", data.APIKey)
	return w.MarshalJSON()
}

// to parse the document, we use dedicated local structs with tag annotations.

type jbill struct {
	Amount    decimal.Decimal `json:"amount"`
	Units     decimal.Decimal `json:"units"`
	Date      Date            `json:"date"`
	DueDate   Date            `json:"dueDate"`
	Status    BillStatus      `json:"status"`
	FetchedAt string          `json:"fetchedAt"`
}

type jmeter struct {
	ID       string `json:"id"`
	Number   string `json:"ukscNumber"`
	Label    string `json:"label"`
	Tenant   Tenant `json:"tenant"`
	LastBill *jbill `json:"lastBill"`
}

type jprofile struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Type  PropertyType `json:"type"`
	Items []jmeter     `json:"items"`
}

// DecodeAppData decodes a persisted or imported document into AppData.
//
// A document without a "profiles" sequence is rejected. Unknown top-level
// fields are ignored so that documents written by newer versions still
// load. A missing "apiKey" defaults to the empty string.
func DecodeAppData(raw []byte) (AppData, error) {
	var doc struct {
		Profiles json.RawMessage `json:"profiles"`
		APIKey   string          `json:"apiKey"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return AppData{}, &DecodeError{Reason: "not a JSON document", Cause: err}
	}
	if len(doc.Profiles) == 0 || string(doc.Profiles) == "null" {
		return AppData{}, &DecodeError{Reason: "missing profiles sequence"}
	}
	var jprofiles []jprofile
	if err := json.Unmarshal(doc.Profiles, &jprofiles); err != nil {
		return AppData{}, &DecodeError{Reason: "invalid profiles sequence", Cause: err}
	}

	data := AppData{
		Profiles: make([]Property, 0, len(jprofiles)),
		APIKey:   doc.APIKey,
	}
	for _, jp := range jprofiles {
		p := Property{
			ID:    jp.ID,
			Name:  jp.Name,
			Type:  jp.Type,
			Items: make([]Meter, 0, len(jp.Items)),
		}
		for _, jm := range jp.Items {
			m := Meter{
				ID:     jm.ID,
				Number: jm.Number,
				Label:  jm.Label,
				Tenant: jm.Tenant,
			}
			if jm.LastBill != nil {
				bill, err := jm.LastBill.snapshot()
				if err != nil {
					return AppData{}, &DecodeError{Reason: fmt.Sprintf("invalid lastBill for meter %q", jm.ID), Cause: err}
				}
				m.LastBill = &bill
			}
			p.Items = append(p.Items, m)
		}
		data.Profiles = append(data.Profiles, p)
	}
	return data, nil
}

func (j jbill) snapshot() (BillSnapshot, error) {
	b := BillSnapshot{
		Amount:  j.Amount,
		Units:   j.Units,
		Date:    j.Date,
		DueDate: j.DueDate,
		Status:  j.Status,
	}
	if j.FetchedAt != "" {
		at, err := time.Parse(time.RFC3339, j.FetchedAt)
		if err != nil {
			return BillSnapshot{}, fmt.Errorf("invalid fetchedAt %q: %w", j.FetchedAt, err)
		}
		b.FetchedAt = at
	}
	return b, nil
}
