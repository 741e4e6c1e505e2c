package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

const colorFormats = "Color string: #RGB, #RGBA, #RRGGBB, #RRGGBBAA, rgb(r, g, b), rgba(r, g, b, a), or a CSS color name"

func colorProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": colorFormats,
	}
}

func ratioProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "number",
		"description": description,
	}
}

// singleColorTool builds the schema shared by tools that take one color.
func singleColorTool(name, description string) Tool {
	return Tool{
		Name:        name,
		Description: description,
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"color": colorProperty(),
			},
			"required": []string{"color"},
		},
	}
}

// ratioTool builds the schema shared by the lighten/darken/saturate family.
func ratioTool(name, description string) Tool {
	return Tool{
		Name:        name,
		Description: description,
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"color": colorProperty(),
				"ratio": ratioProperty("Fraction of the current value to add or remove (0.2 = 20%). Not range-checked; results are clamped to 0-100."),
			},
			"required": []string{"color", "ratio"},
		},
	}
}

func channelsSchema(names ...string) map[string]interface{} {
	props := make(map[string]interface{}, len(names))
	for _, n := range names {
		props[n] = map[string]interface{}{"type": "number"}
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": props,
		"required":   names,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Parsing and Conversion
		singleColorTool("color_parse",
			"Parse a color string into its channels. Returns 3 channels, or 4 when the input carries an alpha other than 1."),
		singleColorTool("color_describe",
			"Describe a color in every representation: hex, RGB, alpha, HSL, YIQ luma and dark/light."),
		{
			Name:        "color_names",
			Description: "List every color name color_parse accepts, sorted.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
				"required":   []string{},
			},
		},
		{
			Name:        "color_rgb_to_hsl",
			Description: "Convert RGB channels (0-255) to HSL (hue 0-360, saturation and lightness 0-100).",
			InputSchema: channelsSchema("r", "g", "b"),
		},
		{
			Name:        "color_hsl_to_rgb",
			Description: "Convert HSL (hue 0-360, saturation and lightness 0-100) to integer RGB channels.",
			InputSchema: channelsSchema("h", "s", "l"),
		},
		{
			Name:        "color_rgb_to_hex",
			Description: "Render RGB channels (0-255) as an uppercase #RRGGBB string.",
			InputSchema: channelsSchema("r", "g", "b"),
		},

		// Transforms
		ratioTool("color_lighten", "Lighten a color: lightness becomes L + L*ratio. Returns #RRGGBB."),
		ratioTool("color_darken", "Darken a color: lightness becomes L - L*ratio. Returns #RRGGBB."),
		ratioTool("color_saturate", "Saturate a color: saturation becomes S + S*ratio. Returns #RRGGBB."),
		ratioTool("color_desaturate", "Desaturate a color: saturation becomes S - S*ratio. Returns #RRGGBB."),
		{
			Name:        "color_adjust_hue",
			Description: "Rotate a color's hue by a number of degrees (negative rotates backwards). Returns #RRGGBB.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color":   colorProperty(),
					"degrees": ratioProperty("Degrees to rotate; any value wraps around the wheel"),
				},
				"required": []string{"color", "degrees"},
			},
		},
		singleColorTool("color_complement", "Return the complementary color (hue rotated 180 degrees) as #RRGGBB."),
		{
			Name:        "color_mix",
			Description: "Blend two colors channel by channel. Returns #RRGGBB.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color1": colorProperty(),
					"color2": colorProperty(),
					"ratio": map[string]interface{}{
						"type":        "number",
						"description": "Weight of color1 (1 = all color1, 0 = all color2). Default 0.5",
						"default":     0.5,
					},
				},
				"required": []string{"color1", "color2"},
			},
		},
		singleColorTool("color_invert", "Invert a color (255 minus each channel). Returns #RRGGBB."),

		// Classification
		singleColorTool("color_is_dark", "Check whether a color is dark (YIQ luma below 128)."),
		singleColorTool("color_is_light", "Check whether a color is light (YIQ luma 128 or above)."),

		// Rendering
		{
			Name:        "color_swatch",
			Description: "Render up to 64 colors as a strip of square tiles and return it as base64-encoded PNG. Alpha is ignored.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colors": map[string]interface{}{
						"type":        "array",
						"items":       colorProperty(),
						"description": "Colors to render, left to right",
					},
					"size": map[string]interface{}{
						"type":        "integer",
						"description": "Tile edge in pixels (1-512). Defaults to the server setting",
					},
				},
				"required": []string{"colors"},
			},
		},
		{
			Name:        "color_sample_image",
			Description: "Read the color of a pixel in an image file and describe it, so it can be passed to the other color tools.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "color_release_image",
			Description: "Drop an image loaded by color_sample_image from memory. With no path, every cached image is dropped.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path previously passed to color_sample_image",
					},
				},
				"required": []string{},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
