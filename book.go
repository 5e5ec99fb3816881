package powerbill

import (
	"errors"
	"io/fs"
	"log"
	"strings"
)

// AppData is the root aggregate persisted as a single document: every
// property with its meters, plus the provider API key.
type AppData struct {
	Profiles []Property
	APIKey   string
}

// Book is the single source of truth for AppData. It mediates every
// mutation, and rewrites the whole persisted document after each one.
//
// All operations are meant to run on a single logical thread; two
// mutations never execute concurrently against the same book.
type Book struct {
	storage Storage
	data    AppData
}

// Open loads the book from storage. Missing or corrupt prior data is
// treated as "no prior data": the application must always start usable,
// so the book begins empty rather than failing.
func Open(storage Storage) *Book {
	b := &Book{storage: storage}
	raw, err := storage.Load()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("warning: cannot load book, starting empty: %v", err)
		}
		return b
	}
	data, err := DecodeAppData(raw)
	if err != nil {
		log.Printf("warning: stored book is not readable, starting empty: %v", err)
		return b
	}
	b.data = data
	return b
}

// save rewrites the whole document. A failed save is logged and tolerated:
// the in-memory book remains authoritative for the session.
func (b *Book) save() {
	raw, err := EncodeAppData(b.data)
	if err != nil {
		log.Printf("warning: cannot encode book: %v", err)
		return
	}
	if err := b.storage.Save(raw); err != nil {
		log.Printf("warning: cannot save book: %v", err)
	}
}

// AddProperty creates a new property with a fresh id and no meters.
// The name must not be blank; the UI pre-validates, but the book never
// creates blank-named properties.
func (b *Book) AddProperty(name string, typ PropertyType) (Property, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Property{}, &ValidationError{Reason: "property name is empty"}
	}
	p := Property{
		ID:    NewID(),
		Name:  name,
		Type:  typ,
		Items: []Meter{},
	}
	b.data.Profiles = append(b.data.Profiles, p)
	b.save()
	return p.clone(), nil
}

// DeleteProperty removes the property and all its meters. Deleting an
// unknown id is a no-op: deletion is idempotent.
func (b *Book) DeleteProperty(id string) {
	kept := b.data.Profiles[:0]
	for _, p := range b.data.Profiles {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	b.data.Profiles = kept
	b.save()
}

// SplitNumbers splits raw bulk-add input into individual service numbers.
// Entries are separated by commas or newlines; blanks are discarded.
func SplitNumbers(entries []string) []string {
	var numbers []string
	for _, entry := range entries {
		for _, num := range strings.FieldsFunc(entry, func(r rune) bool {
			return r == ',' || r == '\n'
		}) {
			num = strings.TrimSpace(num)
			if num != "" {
				numbers = append(numbers, num)
			}
		}
	}
	return numbers
}

// AddMeters creates one meter per service number in the given entries,
// splitting each entry on commas and newlines. New meters get a derived
// default label, a blank tenant and no bill. The creation order matches
// the input order. Duplicate numbers create duplicate meters: the book
// does not enforce service number uniqueness.
func (b *Book) AddMeters(propertyID string, entries []string) ([]Meter, error) {
	p := b.property(propertyID)
	if p == nil {
		return nil, &NotFoundError{Kind: "property", ID: propertyID}
	}
	numbers := SplitNumbers(entries)
	created := make([]Meter, 0, len(numbers))
	for _, num := range numbers {
		m := Meter{
			ID:     NewID(),
			Number: num,
			Label:  DefaultLabel(num),
		}
		p.Items = append(p.Items, m)
		created = append(created, m.clone())
	}
	b.save()
	return created, nil
}

// UpdateMeter applies a partial update to a meter and returns the updated
// record. Absent fields are left untouched; the tenant, when present, is
// replaced as a whole.
func (b *Book) UpdateMeter(propertyID, meterID string, u MeterUpdate) (Meter, error) {
	m, err := b.meter(propertyID, meterID)
	if err != nil {
		return Meter{}, err
	}
	u.apply(m)
	b.save()
	return m.clone(), nil
}

// SetSnapshot attaches a fetched bill snapshot to a meter, replacing any
// prior one. The last completed fetch wins; no snapshot history is kept.
func (b *Book) SetSnapshot(propertyID, meterID string, snap BillSnapshot) error {
	m, err := b.meter(propertyID, meterID)
	if err != nil {
		return err
	}
	m.LastBill = &snap
	b.save()
	return nil
}

// RemoveMeter removes a meter from a property. Removing an unknown id is
// a no-op: removal is idempotent.
func (b *Book) RemoveMeter(propertyID, meterID string) {
	p := b.property(propertyID)
	if p == nil {
		return
	}
	kept := p.Items[:0]
	for _, m := range p.Items {
		if m.ID != meterID {
			kept = append(kept, m)
		}
	}
	p.Items = kept
	b.save()
}

// SetAPIKey unconditionally replaces the stored provider API key. An empty
// string clears it.
func (b *Book) SetAPIKey(key string) {
	b.data.APIKey = key
	b.save()
}

// APIKey returns the stored provider API key, or "" if none is set.
func (b *Book) APIKey() string { return b.data.APIKey }

// Properties returns a copy of all properties in display order.
func (b *Book) Properties() []Property {
	out := make([]Property, len(b.data.Profiles))
	for i, p := range b.data.Profiles {
		out[i] = p.clone()
	}
	return out
}

// Property returns a copy of the property with this id.
func (b *Book) Property(id string) (Property, bool) {
	p := b.property(id)
	if p == nil {
		return Property{}, false
	}
	return p.clone(), true
}

// Meter returns a copy of the meter with this id.
func (b *Book) Meter(propertyID, meterID string) (Meter, bool) {
	m, err := b.meter(propertyID, meterID)
	if err != nil {
		return Meter{}, false
	}
	return m.clone(), true
}

// FindMeters returns copies of all meters whose service number, label or
// tenant name contains the query, case-insensitively.
func (b *Book) FindMeters(query string) []Meter {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []Meter
	for _, p := range b.data.Profiles {
		for _, m := range p.Items {
			if query == "" ||
				strings.Contains(strings.ToLower(m.Number), query) ||
				strings.Contains(strings.ToLower(m.Label), query) ||
				strings.Contains(strings.ToLower(m.Tenant.Name), query) {
				out = append(out, m.clone())
			}
		}
	}
	return out
}

// property returns a pointer to the live property record, or nil.
func (b *Book) property(id string) *Property {
	for i := range b.data.Profiles {
		if b.data.Profiles[i].ID == id {
			return &b.data.Profiles[i]
		}
	}
	return nil
}

// meter returns a pointer to the live meter record.
func (b *Book) meter(propertyID, meterID string) (*Meter, error) {
	p := b.property(propertyID)
	if p == nil {
		return nil, &NotFoundError{Kind: "property", ID: propertyID}
	}
	for i := range p.Items {
		if p.Items[i].ID == meterID {
			return &p.Items[i], nil
		}
	}
	return nil, &NotFoundError{Kind: "meter", ID: meterID}
}
