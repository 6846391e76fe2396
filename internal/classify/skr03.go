package classify

import "strconv"

// AccountGroup is one of the four SKR03 chart-of-accounts ranges, plus a
// residual group for anything outside them.
type AccountGroup string

const (
	GroupAssets  AccountGroup = "assets"  // 0000-0999: Anlage- und Kapitalkonten
	GroupFinance AccountGroup = "finance" // 1000-1999: Finanz-, Privat- und Steuerkonten
	GroupExpense AccountGroup = "expense" // 2000-7999: Aufwandskonten
	GroupIncome  AccountGroup = "income"  // 8000-9999: Erlöskonten
	GroupOther   AccountGroup = "other"   // residual, always ordered last
)

type accountRange struct {
	lo, hi int
	group  AccountGroup
}

// Declaration order here is the rendering order for all grouped output.
var skr03Ranges = []accountRange{
	{0, 999, GroupAssets},
	{1000, 1999, GroupFinance},
	{2000, 7999, GroupExpense},
	{8000, 9999, GroupIncome},
}

// GroupOrder is the fixed output order of account groups.
var GroupOrder = []AccountGroup{GroupAssets, GroupFinance, GroupExpense, GroupIncome, GroupOther}

var groupLabels = map[AccountGroup]string{
	GroupAssets:  "Anlage- und Kapitalkonten",
	GroupFinance: "Finanz- und Privatkonten",
	GroupExpense: "Aufwandskonten",
	GroupIncome:  "Erlöskonten",
	GroupOther:   "Sonstige Konten",
}

// AccountGroupOf classifies an SKR03 account number (a string of digits)
// into its range group. Non-numeric or out-of-range numbers fall into
// GroupOther.
func AccountGroupOf(account string) AccountGroup {
	n, err := strconv.Atoi(account)
	if err != nil || n < 0 {
		return GroupOther
	}
	for _, r := range skr03Ranges {
		if n >= r.lo && n <= r.hi {
			return r.group
		}
	}
	return GroupOther
}

// Label returns the German display label for a group.
func (g AccountGroup) Label() string {
	if l, ok := groupLabels[g]; ok {
		return l
	}
	return string(g)
}
