package entity

import "strings"

// Fallbacks for the optional call-to-action and style fields. Loading a banner
// into a form, building an update payload and persisting a banner all go
// through WithDefaults so the three paths agree.
const (
	DefaultCTA     = "Ver más"
	DefaultCTALink = "/"
	DefaultBgColor = "from-[#FF3C3B] to-[#FF8C42]"
)

func EffectiveCTA(raw string) string     { return withFallback(raw, DefaultCTA) }
func EffectiveCTALink(raw string) string { return withFallback(raw, DefaultCTALink) }
func EffectiveBgColor(raw string) string { return withFallback(raw, DefaultBgColor) }

func WithDefaults(c Content) Content {
	c.CTA = EffectiveCTA(c.CTA)
	c.CTALink = EffectiveCTALink(c.CTALink)
	c.BgColor = EffectiveBgColor(c.BgColor)
	return c
}

func withFallback(raw, fallback string) string {
	if strings.TrimSpace(raw) == "" {
		return fallback
	}
	return raw
}
