package claims

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "claimeval/pkg/domain-errors"
)

func TestParseIncidentType(t *testing.T) {
	tests := []struct {
		input    string
		expected IncidentType
	}{
		{"accident", IncidentAccident},
		{"THEFT", IncidentTheft},
		{"  fire ", IncidentFire},
		{"Water Damage", IncidentWaterDamage},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseIncidentType(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	for _, bad := range []string{"", "flood", "water_damage", "waterdamage"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			_, err := ParseIncidentType(bad)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}
}

func TestIncidentTypesIsACopy(t *testing.T) {
	types := IncidentTypes()
	require.Len(t, types, 4)
	types[0] = "meteor"
	assert.Equal(t, IncidentAccident, IncidentTypes()[0])
	for _, it := range IncidentTypes() {
		assert.True(t, it.IsValid())
	}
}

func TestReasonCodes(t *testing.T) {
	assert.Equal(t,
		[]ReasonCode{ReasonPolicyInactive, ReasonNotCovered, ReasonZeroPayout, ReasonApproved},
		ReasonCodes())
}
