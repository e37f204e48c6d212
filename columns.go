package fixedincome

import (
	"regexp"
	"strings"
)

// Role names a semantic column the engine looks for. The holdings table has
// no fixed schema: roles are resolved by case-insensitive substring matching
// against the alias sets below, preserving table column order.
type Role string

const (
	RoleRating   Role = "rating"
	RoleSector   Role = "sector"
	RoleIssuer   Role = "issuer"
	RoleCurrency Role = "currency"
)

var aliases = map[Role][]string{
	RoleRating:   {"Rating", "Composite Rating", "Moody", "S&P", "Fitch", "MSCI"},
	RoleSector:   {"Sector", "Issuer Sector", "Industry", "GICS Sector"},
	RoleIssuer:   {"Issuer Name", "Issuer", "Security Name", "Description", "Ticker"},
	RoleCurrency: {"Currency", "Ccy", "Base Currency", "Trade Currency"},
}

// FindColumns returns every column name matching any alias for the role,
// in table column order. Resolution is pure; no match yields an empty slice.
func FindColumns(t *Table, role Role) []string {
	var found []string
	for _, c := range t.Columns() {
		if matchesRole(c.Name, role) {
			found = append(found, c.Name)
		}
	}
	return found
}

// PrimaryColumn returns the first column matching the role, or "" when the
// role resolves to nothing.
func PrimaryColumn(t *Table, role Role) string {
	if cols := FindColumns(t, role); len(cols) > 0 {
		return cols[0]
	}
	return ""
}

func matchesRole(name string, role Role) bool {
	lower := strings.ToLower(name)
	for _, alias := range aliases[role] {
		if strings.Contains(lower, strings.ToLower(alias)) {
			return true
		}
	}
	return false
}

// marketValueColumn is the one required column of a holdings table.
const marketValueColumn = "Market Value"

// yieldColumn is the optional yield metric consumed by Summary.
const yieldColumn = "Yield to Worst"

// maturityColumn is the optional maturity date column.
const maturityColumn = "Maturity"

// krdPrefix is the naming scheme key-rate-duration tenor columns are renamed
// to on import (e.g. "2Y" becomes "KRD Contribution 2Y").
const krdPrefix = "KRD Contribution "

// tenorRE matches raw tenor column labels: an integer followed by M or Y.
var tenorRE = regexp.MustCompile(`^\d+[MY]$`)

// IsTenorLabel reports whether a raw column name is a KRD tenor bucket label.
func IsTenorLabel(name string) bool {
	return tenorRE.MatchString(strings.TrimSpace(name))
}

// krdColumns returns the KRD contribution column names in table order,
// paired with their tenor labels.
func krdColumns(t *Table) (cols, tenors []string) {
	for _, c := range t.Columns() {
		if strings.HasPrefix(c.Name, krdPrefix) {
			cols = append(cols, c.Name)
			tenors = append(tenors, strings.TrimPrefix(c.Name, krdPrefix))
		}
	}
	return cols, tenors
}

// durationColumn returns the first column whose name contains "duration"
// (case-insensitive), or "".
func durationColumn(t *Table) string {
	for _, c := range t.Columns() {
		if strings.Contains(strings.ToLower(c.Name), "duration") {
			return c.Name
		}
	}
	return ""
}
