package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrincipalLandingModule(t *testing.T) {
	tests := []struct {
		name string
		p    Principal
		want ModuleTag
	}{
		{"staff", Principal{Role: RoleGeneralManager}, ModuleDashboard},
		{"client", Principal{Role: RoleClient, ClientUsername: "client1"}, ModuleClientPortal},
		{"employee", Principal{Role: RoleEmployee, EmployeeID: "e-1"}, ModuleEmployeePortal},
		{"trustee", Principal{Role: RoleTrustee, TrusteeID: "t-1"}, ModuleTrusteePortal},
		{"investor", Principal{Role: RoleInvestor, InvestorID: "i-1"}, ModuleInvestorPortal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.LandingModule())
		})
	}
}

func TestRoleClassification(t *testing.T) {
	for _, r := range StaffRoles {
		assert.False(t, r.IsPortal(), r)
		assert.True(t, r.IsKnown(), r)
	}
	for _, r := range []Role{RoleClient, RoleEmployee, RoleTrustee, RoleInvestor} {
		assert.True(t, r.IsPortal(), r)
		assert.True(t, r.IsKnown(), r)
	}
	assert.False(t, Role("Janitor").IsKnown())
}

func TestParseCurrencyAndDeletePolicy(t *testing.T) {
	c, ok := ParseCurrency("", USD)
	assert.True(t, ok)
	assert.Equal(t, USD, c)

	c, ok = ParseCurrency("syp", USD)
	assert.True(t, ok)
	assert.Equal(t, SYP, c)

	_, ok = ParseCurrency("EUR", USD)
	assert.False(t, ok)

	assert.Equal(t, DeleteRestrict, ParseDeletePolicy(""))
	assert.Equal(t, DeleteCascade, ParseDeletePolicy("cascade"))
	assert.Equal(t, DeleteOrphan, ParseDeletePolicy("orphan"))
	assert.Equal(t, DeleteRestrict, ParseDeletePolicy("nuke"))
}
