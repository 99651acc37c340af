package domain

// MethodPolicy decides which payment methods need compliance sign-off and
// which clear automatically on processor settlement.
type MethodPolicy struct {
	ComplianceMethods []PaymentMethod
	AutoClearMethods  []PaymentMethod
}

// DefaultMethodPolicy requires approval for cash and auto-clears cards.
func DefaultMethodPolicy() MethodPolicy {
	return MethodPolicy{
		ComplianceMethods: []PaymentMethod{MethodCash},
		AutoClearMethods:  []PaymentMethod{MethodCard},
	}
}

// RequiresCompliance reports whether m must pass the approval gate.
func (p MethodPolicy) RequiresCompliance(m PaymentMethod) bool {
	return containsMethod(p.ComplianceMethods, m)
}

// AutoClears reports whether m may go PENDING -> RECEIVED directly.
func (p MethodPolicy) AutoClears(m PaymentMethod) bool {
	return containsMethod(p.AutoClearMethods, m)
}

func containsMethod(list []PaymentMethod, m PaymentMethod) bool {
	for _, x := range list {
		if x == m {
			return true
		}
	}
	return false
}

// AccountRegistry lists the treasury accounts transfers may use.
type AccountRegistry struct {
	SourceAccounts      []string
	DestinationAccounts []string
}

// DefaultAccountRegistry is used when no accounts are configured.
func DefaultAccountRegistry() AccountRegistry {
	return AccountRegistry{
		SourceAccounts:      []string{"OPERATING_BANK", "CUSTODY_BANK"},
		DestinationAccounts: []string{"EXCHANGE_MAIN", "CUSTODY_COLD", "CUSTODY_BANK"},
	}
}

// IsSource reports whether account is a known source account.
func (r AccountRegistry) IsSource(account string) bool {
	return containsString(r.SourceAccounts, account)
}

// IsDestination reports whether account is a known destination account.
func (r AccountRegistry) IsDestination(account string) bool {
	return containsString(r.DestinationAccounts, account)
}

func containsString(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
