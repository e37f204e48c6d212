package fixedincome

import (
	"reflect"
	"testing"
)

func TestFindColumns(t *testing.T) {
	table := holdingsTable(t, []Column{
		{Name: "Market Value", Kind: KindNumeric},
		{Name: "Moody Rating", Kind: KindText},
		{Name: "s&p rating", Kind: KindText},
		{Name: "GICS Sector Level 1", Kind: KindText},
		{Name: "FX Currency Code", Kind: KindText},
		{Name: "Issuer Name", Kind: KindText},
	}, nil)

	tests := []struct {
		role Role
		want []string
	}{
		{RoleRating, []string{"Moody Rating", "s&p rating"}},
		{RoleSector, []string{"GICS Sector Level 1"}},
		{RoleCurrency, []string{"FX Currency Code"}},
		{RoleIssuer, []string{"Issuer Name"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := FindColumns(table, tt.role); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindColumns(%s) = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}

func TestPrimaryColumn(t *testing.T) {
	table := holdingsTable(t, []Column{
		{Name: "Issuer Sector", Kind: KindText},
		{Name: "Industry", Kind: KindText},
	}, nil)
	// first match in table column order wins
	if got := PrimaryColumn(table, RoleSector); got != "Issuer Sector" {
		t.Errorf("PrimaryColumn(sector) = %q, want %q", got, "Issuer Sector")
	}
	if got := PrimaryColumn(table, RoleCurrency); got != "" {
		t.Errorf("PrimaryColumn(currency) = %q, want empty", got)
	}
}

func TestIsTenorLabel(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"2Y", true},
		{"6M", true},
		{"30Y", true},
		{" 10Y ", true},
		{"2y", false},
		{"Y2", false},
		{"2", false},
		{"2YY", false},
		{"Maturity", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsTenorLabel(tt.name); got != tt.want {
			t.Errorf("IsTenorLabel(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestKRDColumns(t *testing.T) {
	table := holdingsTable(t, []Column{
		{Name: "KRD Contribution 6M", Kind: KindNumeric},
		{Name: "Market Value", Kind: KindNumeric},
		{Name: "KRD Contribution 10Y", Kind: KindNumeric},
	}, nil)
	cols, tenors := krdColumns(table)
	if !reflect.DeepEqual(cols, []string{"KRD Contribution 6M", "KRD Contribution 10Y"}) {
		t.Errorf("krdColumns() cols = %v", cols)
	}
	if !reflect.DeepEqual(tenors, []string{"6M", "10Y"}) {
		t.Errorf("krdColumns() tenors = %v", tenors)
	}
}

func TestDurationColumn(t *testing.T) {
	table := holdingsTable(t, []Column{
		{Name: "Market Value", Kind: KindNumeric},
		{Name: "Effective DURATION", Kind: KindNumeric},
	}, nil)
	if got := durationColumn(table); got != "Effective DURATION" {
		t.Errorf("durationColumn() = %q, want %q", got, "Effective DURATION")
	}
}
