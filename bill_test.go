package powerbill

import "testing"

func TestParseBillStatus(t *testing.T) {
	for _, s := range []BillStatus{Unpaid, Paid} {
		got, err := ParseBillStatus(s.String())
		if err != nil || got != s {
			t.Errorf("ParseBillStatus(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := ParseBillStatus("Overdue"); err == nil {
		t.Error("ParseBillStatus(\"Overdue\") did not fail")
	}
}

func TestParsePropertyType(t *testing.T) {
	for _, p := range []PropertyType{Home, Apartment} {
		got, err := ParsePropertyType(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePropertyType(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParsePropertyType("castle"); err == nil {
		t.Error("ParsePropertyType(\"castle\") did not fail")
	}
}
