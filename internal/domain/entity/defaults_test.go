package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   Content
		want Content
	}{
		{
			name: "empty optional fields",
			in:   Content{Title: "t"},
			want: Content{Title: "t", CTA: DefaultCTA, CTALink: DefaultCTALink, BgColor: DefaultBgColor},
		},
		{
			name: "blank is treated as empty",
			in:   Content{Title: "t", CTA: "  ", CTALink: "\t"},
			want: Content{Title: "t", CTA: DefaultCTA, CTALink: DefaultCTALink, BgColor: DefaultBgColor},
		},
		{
			name: "set fields are kept",
			in:   Content{Title: "t", Subtitle: "s", CTA: "Buy", CTALink: "/shop", BgColor: "bg-red-500"},
			want: Content{Title: "t", Subtitle: "s", CTA: "Buy", CTALink: "/shop", BgColor: "bg-red-500"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, WithDefaults(tt.in))
		})
	}
}
