// Package config provides local-first configuration for swipetabs.
//
// Everything lives in a .swipetabs/ directory next to the pages being shown:
//
//	.swipetabs/
//	├── config.toml      # Settings (commit it to share a look)
//	├── state.json       # Selected page and strip style of the last run
//	├── swipetabs.log    # Debug log
//	└── .gitignore       # Keeps state and logs out of git
//
// config.toml has one table per concern:
//
//	[strip]
//	background_color = "#3B3B3B"
//	text_color_center = "${ACCENT}"
//	tab_padding_left = 2
//
//	[pager]
//	animation_frames = 8
//	frame_interval_ms = 16
//
//	[ui]
//	theme = "slate"
//	show_help = true
//
// String values may reference environment variables as $VAR or ${VAR}.
// Unset variables are left as written.
//
// Example usage:
//
//	manager := config.NewManager("/path/to/pages")
//	if err := manager.Load(); err != nil {
//		return err
//	}
//	cfg := manager.Get()
//
//	// Update a single setting by its dotted key
//	manager.Set("strip.line_color", "#E0B84C")
package config
