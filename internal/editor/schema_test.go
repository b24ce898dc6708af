package editor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	v, err := Validate(Input{
		Title:     "Summer sale",
		Order:     " 3.0 ",
		IsActive:  true,
		StartDate: "2024-06-01",
		EndDate:   "2024-08-31",
	})
	require.NoError(t, err)
	require.Equal(t, 3, v.Order)
	require.True(t, v.IsActive)

	v, err = Validate(Input{Title: "t", StartDate: "2024-06-01"})
	require.NoError(t, err)
	require.Zero(t, v.Order)
}

func TestValidate_reportsEveryField(t *testing.T) {
	_, err := Validate(Input{Order: "-2", EndDate: "tomorrow"})

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Equal(t, ValidationErrors{
		"title":     msgTitleRequired,
		"order":     msgOrderNegative,
		"startDate": msgStartDateRequired,
		"endDate":   msgInvalidDate,
	}, verrs)
	require.Contains(t, verrs.Error(), "title: "+msgTitleRequired)
}

func Test_coerceInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"", 0, true},
		{"12", 12, true},
		{"-1", -1, true},
		{"2.0", 2, true},
		{"2.5", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"1e12", 0, false},
	}
	for _, tt := range tests {
		got, ok := coerceInt(tt.in)
		require.Equal(t, tt.wantOK, ok, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}
}
