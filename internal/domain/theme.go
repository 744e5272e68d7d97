package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ThemeSettings is the per-business theme record. Every field may be empty;
// resolution backfills from the default preset so presentation always gets a
// complete theme. One active record per business.
type ThemeSettings struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	BusinessID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	PrimaryColor    string    `gorm:"size:40"`
	SecondaryColor  string    `gorm:"size:40"`
	AccentColor     string    `gorm:"size:40"`
	BackgroundColor string    `gorm:"size:40"`
	SurfaceColor    string    `gorm:"size:40"`
	TextColor       string    `gorm:"size:40"`
	MutedColor      string    `gorm:"size:40"`
	BorderRadius    string    `gorm:"size:20"`
	ButtonRadius    string    `gorm:"size:20"`
	CardRadius      string    `gorm:"size:20"`
	ButtonStyle     string    `gorm:"size:20"`
	CardStyle       string    `gorm:"size:20"`
	BadgeStyle      string    `gorm:"size:20"`
	ShadowIntensity string    `gorm:"size:20"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ResolvedTheme is a complete theme: after resolution no field is ever empty.
type ResolvedTheme struct {
	PrimaryColor    string
	SecondaryColor  string
	AccentColor     string
	BackgroundColor string
	SurfaceColor    string
	TextColor       string
	MutedColor      string
	BorderRadius    string
	ButtonRadius    string
	CardRadius      string
	ButtonStyle     string
	CardStyle       string
	BadgeStyle      string
	ShadowIntensity string
	BoxShadow       string
}

// ThemePreset is a named, complete bundle of theme values.
type ThemePreset struct {
	PrimaryColor    string
	SecondaryColor  string
	AccentColor     string
	BackgroundColor string
	SurfaceColor    string
	TextColor       string
	MutedColor      string
	BorderRadius    string
	ButtonRadius    string
	CardRadius      string
	ButtonStyle     string
	CardStyle       string
	BadgeStyle      string
	ShadowIntensity string
}

const DefaultPreset = "clasico"

var Presets = map[string]ThemePreset{
	"clasico": {
		PrimaryColor:    "#f97316",
		SecondaryColor:  "#0f172a",
		AccentColor:     "#fb923c",
		BackgroundColor: "#fafaf9",
		SurfaceColor:    "#ffffff",
		TextColor:       "#1c1917",
		MutedColor:      "#78716c",
		BorderRadius:    "12px",
		ButtonRadius:    "9999px",
		CardRadius:      "16px",
		ButtonStyle:     "solid",
		CardStyle:       "elevated",
		BadgeStyle:      "pill",
		ShadowIntensity: "medium",
	},
	"oscuro": {
		PrimaryColor:    "#fbbf24",
		SecondaryColor:  "#f8fafc",
		AccentColor:     "#f59e0b",
		BackgroundColor: "#0f172a",
		SurfaceColor:    "#1e293b",
		TextColor:       "#f1f5f9",
		MutedColor:      "#94a3b8",
		BorderRadius:    "10px",
		ButtonRadius:    "10px",
		CardRadius:      "14px",
		ButtonStyle:     "solid",
		CardStyle:       "outlined",
		BadgeStyle:      "square",
		ShadowIntensity: "strong",
	},
	"menta": {
		PrimaryColor:    "#10b981",
		SecondaryColor:  "#064e3b",
		AccentColor:     "#34d399",
		BackgroundColor: "#f0fdf4",
		SurfaceColor:    "#ffffff",
		TextColor:       "#052e16",
		MutedColor:      "#6b7280",
		BorderRadius:    "14px",
		ButtonRadius:    "14px",
		CardRadius:      "18px",
		ButtonStyle:     "soft",
		CardStyle:       "flat",
		BadgeStyle:      "pill",
		ShadowIntensity: "subtle",
	},
	"minimal": {
		PrimaryColor:    "#18181b",
		SecondaryColor:  "#3f3f46",
		AccentColor:     "#52525b",
		BackgroundColor: "#ffffff",
		SurfaceColor:    "#fafafa",
		TextColor:       "#09090b",
		MutedColor:      "#a1a1aa",
		BorderRadius:    "4px",
		ButtonRadius:    "4px",
		CardRadius:      "6px",
		ButtonStyle:     "outline",
		CardStyle:       "flat",
		BadgeStyle:      "square",
		ShadowIntensity: "none",
	},
}

// shadowCSS maps the intensity enum to box-shadow values. Unknown values fall
// back to medium rather than failing.
var shadowCSS = map[string]string{
	"none":   "none",
	"subtle": "0 1px 2px rgba(0,0,0,0.06)",
	"medium": "0 4px 12px rgba(0,0,0,0.10)",
	"strong": "0 10px 30px rgba(0,0,0,0.20)",
}

func resolveShadow(intensity string) (string, string) {
	if css, ok := shadowCSS[intensity]; ok {
		return intensity, css
	}
	return "medium", shadowCSS["medium"]
}

func pick(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// ResolveTheme merges a stored theme record over the default preset. Every
// output field is guaranteed non-empty. Accent, muted and the per-element
// radii have a legacy general field as a middle fallback tier: explicit field,
// then the general one from the same record, then the preset.
func ResolveTheme(ts *ThemeSettings) ResolvedTheme {
	preset := Presets[DefaultPreset]
	if ts == nil {
		ts = &ThemeSettings{}
	}
	out := ResolvedTheme{
		PrimaryColor:    pick(ts.PrimaryColor, preset.PrimaryColor),
		SecondaryColor:  pick(ts.SecondaryColor, preset.SecondaryColor),
		AccentColor:     pick(ts.AccentColor, ts.SecondaryColor, preset.AccentColor),
		BackgroundColor: pick(ts.BackgroundColor, preset.BackgroundColor),
		SurfaceColor:    pick(ts.SurfaceColor, preset.SurfaceColor),
		TextColor:       pick(ts.TextColor, preset.TextColor),
		MutedColor:      pick(ts.MutedColor, ts.TextColor, preset.MutedColor),
		BorderRadius:    pick(ts.BorderRadius, preset.BorderRadius),
		ButtonRadius:    pick(ts.ButtonRadius, ts.BorderRadius, preset.ButtonRadius),
		CardRadius:      pick(ts.CardRadius, ts.BorderRadius, preset.CardRadius),
		ButtonStyle:     pick(ts.ButtonStyle, preset.ButtonStyle),
		CardStyle:       pick(ts.CardStyle, preset.CardStyle),
		BadgeStyle:      pick(ts.BadgeStyle, preset.BadgeStyle),
	}
	intensity := pick(ts.ShadowIntensity, preset.ShadowIntensity)
	out.ShadowIntensity, out.BoxShadow = resolveShadow(intensity)
	return out
}

// CSS renders the theme as globally scoped custom properties. This is the
// apply step: presentation reads only these variables.
func (t ResolvedTheme) CSS() string {
	var b strings.Builder
	b.WriteString(":root{\n")
	for _, v := range [][2]string{
		{"--menu-primary", t.PrimaryColor},
		{"--menu-secondary", t.SecondaryColor},
		{"--menu-accent", t.AccentColor},
		{"--menu-bg", t.BackgroundColor},
		{"--menu-surface", t.SurfaceColor},
		{"--menu-text", t.TextColor},
		{"--menu-muted", t.MutedColor},
		{"--menu-radius", t.BorderRadius},
		{"--menu-button-radius", t.ButtonRadius},
		{"--menu-card-radius", t.CardRadius},
		{"--menu-button-style", t.ButtonStyle},
		{"--menu-card-style", t.CardStyle},
		{"--menu-badge-style", t.BadgeStyle},
		{"--menu-shadow", t.BoxShadow},
	} {
		fmt.Fprintf(&b, "  %s: %s;\n", v[0], v[1])
	}
	b.WriteString("}\n")
	return b.String()
}
