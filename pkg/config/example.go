package config

// ExampleConfig returns a configuration with example values for use with `dmgcanvas init`
func ExampleConfig() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Width:  540,
			Height: 380,
		},
		Text: TextConfig{
			Title:       "MyApp",
			Subtitle:    "version env(APP_VERSION)",
			Arrow:       "→",
			Instruction: "Drag to Applications",
		},
		Palette: PaletteConfig{
			Background: "#fafafa",
			Text:       "#0a0a0a",
			Accent:     "#d4d4d4",
			Border:     "#a3a3a3",
		},
		Output: OutputConfig{
			Dir: ".",
			SVG: DefaultSVGName,
			PNG: DefaultPNGName,
		},
		Render: RenderConfig{
			Backends: DefaultBackends(),
		},
	}
}
