package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Validate_Name_Trims_Whitespace(t *testing.T) {
	req := require.New(t)
	name, err := ValidateName("  Ana  ")
	req.NoError(err)
	req.Equal("Ana", name)
}

func Test_Validate_Name_Rejects_Blank(t *testing.T) {
	req := require.New(t)
	_, err := ValidateName("   ")
	req.Error(err)
}

func Test_Validate_Name_Rejects_Too_Long(t *testing.T) {
	req := require.New(t)
	_, err := ValidateName("this display name is way past the thirty two rune cap")
	req.Error(err)
}

func Test_Roster_Knows_Admins(t *testing.T) {
	req := require.New(t)
	roster := NewRoster([]string{"Januar", "Kafka"})
	req.True(roster.IsAdmin("Kafka"))
	req.False(roster.IsAdmin("Ana"))
}
