package styles

// NewSlateTheme is the default theme; its greys sit well next to the
// strip's default #3B3B3B background.
func NewSlateTheme() *Theme {
	return &Theme{
		Name:   "slate",
		IsDark: true,

		Primary:   ParseHex("#91A438"), // Strip highlight green
		Secondary: ParseHex("#C9D67A"),
		Accent:    ParseHex("#E0B84C"),

		BgBase:    ParseHex("#2B2B2B"),
		BgSubtle:  ParseHex("#3B3B3B"),
		BgOverlay: ParseHex("#4A4A4A"),

		FgBase:     ParseHex("#EDEDED"),
		FgMuted:    ParseHex("#B0B0B0"),
		FgSubtle:   ParseHex("#7A7A7A"),
		FgInverted: ParseHex("#1E1E1E"),

		Border:      ParseHex("#5A5A5A"),
		BorderFocus: ParseHex("#91A438"),

		Success: ParseHex("#27AE60"),
		Error:   ParseHex("#E74C3C"),
		Warning: ParseHex("#F39C12"),
		Info:    ParseHex("#3498DB"),
	}
}

// NewDarkTheme creates a professional dark theme
func NewDarkTheme() *Theme {
	return &Theme{
		Name:   "dark",
		IsDark: true,

		Primary:   ParseHex("#60a5fa"), // Sky blue
		Secondary: ParseHex("#a78bfa"), // Violet
		Accent:    ParseHex("#34d399"), // Emerald

		BgBase:    ParseHex("#0f172a"), // Slate 900
		BgSubtle:  ParseHex("#334155"), // Slate 700
		BgOverlay: ParseHex("#475569"), // Slate 600

		FgBase:     ParseHex("#f8fafc"), // Slate 50
		FgMuted:    ParseHex("#cbd5e1"), // Slate 300
		FgSubtle:   ParseHex("#94a3b8"), // Slate 400
		FgInverted: ParseHex("#0f172a"), // Slate 900

		Border:      ParseHex("#334155"),
		BorderFocus: ParseHex("#60a5fa"),

		Success: ParseHex("#34d399"),
		Error:   ParseHex("#f87171"),
		Warning: ParseHex("#fbbf24"),
		Info:    ParseHex("#60a5fa"),
	}
}

// NewFireTheme is the red/yellow gradient theme
func NewFireTheme() *Theme {
	return &Theme{
		Name:   "fire",
		IsDark: true,

		Primary:   ParseHex("#C0392B"), // Fire red
		Secondary: ParseHex("#F4D03F"), // Bright yellow
		Accent:    ParseHex("#F39C12"), // Golden orange

		BgBase:    ParseHex("#2C3E50"),
		BgSubtle:  ParseHex("#3D566E"),
		BgOverlay: ParseHex("#4A6278"),

		FgBase:     ParseHex("#f5f6fa"),
		FgMuted:    ParseHex("#a0a0a0"),
		FgSubtle:   ParseHex("#6F6F70"),
		FgInverted: ParseHex("#1e1e1e"),

		Border:      ParseHex("#5D6D7E"),
		BorderFocus: ParseHex("#F39C12"),

		Success: ParseHex("#27AE60"),
		Error:   ParseHex("#E74C3C"),
		Warning: ParseHex("#F39C12"),
		Info:    ParseHex("#3498DB"),
	}
}
