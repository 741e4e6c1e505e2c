package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/ironsheep/color-tools-mcp/internal/colorkit"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_parse", "color_mix").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
// A result that cannot be encoded returns -32603.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.cfg.Debug {
			log.Printf("Tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return s.toolResponse(req.ID, params.Name, result)
}

// toolResponse wraps a tool result in MCP text content.
func (s *Server) toolResponse(id interface{}, name string, result interface{}) *MCPResponse {
	text, err := marshalJSON(result)
	if err != nil {
		log.Printf("Tool %s: failed to encode result: %v", name, err)
		return s.errorResponse(id, -32603, "Internal error", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": text,
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Checks required arguments and applies defaults
//  3. Calls the colorkit or imaging function
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if s.cfg.Debug {
		log.Printf("Tool call: %s", name)
	}

	switch name {
	// Parsing and Conversion
	case "color_parse":
		return s.handleColorParse(args)
	case "color_describe":
		return s.handleColorDescribe(args)
	case "color_names":
		return s.handleNames()
	case "color_rgb_to_hsl":
		return s.handleRGBToHSL(args)
	case "color_hsl_to_rgb":
		return s.handleHSLToRGB(args)
	case "color_rgb_to_hex":
		return s.handleRGBToHex(args)

	// Transforms
	case "color_lighten":
		return s.handleRatioTransform(args, colorkit.Lighten)
	case "color_darken":
		return s.handleRatioTransform(args, colorkit.Darken)
	case "color_saturate":
		return s.handleRatioTransform(args, colorkit.Saturate)
	case "color_desaturate":
		return s.handleRatioTransform(args, colorkit.Desaturate)
	case "color_adjust_hue":
		return s.handleAdjustHue(args)
	case "color_complement":
		return s.handleSingleTransform(args, colorkit.ComplementaryColor)
	case "color_mix":
		return s.handleMix(args)
	case "color_invert":
		return s.handleSingleTransform(args, colorkit.InvertColor)

	// Classification
	case "color_is_dark":
		return s.handleClassify(args, colorkit.IsDark)
	case "color_is_light":
		return s.handleClassify(args, colorkit.IsLight)

	// Rendering
	case "color_swatch":
		return s.handleSwatch(args)
	case "color_sample_image":
		return s.handleSampleImage(args)
	case "color_release_image":
		return s.handleReleaseImage(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// marshalJSON converts a value to pretty-printed JSON string.
func marshalJSON(v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// === Result Types ===

// ColorResult is returned by every tool that produces a single color.
type ColorResult struct {
	Color string `json:"color"` // "#RRGGBB"
}

// ParseResult is returned by color_parse.
type ParseResult struct {
	Channels []float64     `json:"channels"` // [r, g, b] or [r, g, b, a]
	HasAlpha bool          `json:"has_alpha"`
	Hex      string        `json:"hex"`
	RGBA     colorkit.RGBA `json:"rgba"` // Alpha is 1 when the input had none
	CSS      string        `json:"css"`  // "#RRGGBB" or "rgba(r, g, b, a)"
}

// NamesResult is returned by color_names.
type NamesResult struct {
	Count int      `json:"count"`
	Names []string `json:"names"`
}

// ReleaseResult is returned by color_release_image.
type ReleaseResult struct {
	Released int `json:"released"` // Images dropped by this call
	Cached   int `json:"cached"`   // Images still cached
}

// ClassifyResult is returned by color_is_dark and color_is_light.
type ClassifyResult struct {
	Color  string `json:"color"`
	Result bool   `json:"result"`
}

// === Parsing and Conversion Handlers ===

type colorArgs struct {
	Color string `json:"color"`
}

func decodeColorArgs(args json.RawMessage) (colorArgs, error) {
	var a colorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return a, err
	}
	if a.Color == "" {
		return a, errors.New("color is required")
	}
	return a, nil
}

func (s *Server) handleColorParse(args json.RawMessage) (interface{}, error) {
	a, err := decodeColorArgs(args)
	if err != nil {
		return nil, err
	}
	c, err := colorkit.ParseColor(a.Color)
	if err != nil {
		return nil, err
	}
	return &ParseResult{
		Channels: c.Channels(),
		HasAlpha: c.HasAlpha,
		Hex:      colorkit.RGBToHex(c.RGB),
		RGBA:     c.RGBA(),
		CSS:      c.String(),
	}, nil
}

func (s *Server) handleColorDescribe(args json.RawMessage) (interface{}, error) {
	a, err := decodeColorArgs(args)
	if err != nil {
		return nil, err
	}
	c, err := colorkit.ParseColor(a.Color)
	if err != nil {
		return nil, err
	}
	report := colorkit.Describe(c)
	return &report, nil
}

func (s *Server) handleNames() (interface{}, error) {
	names := colorkit.Names()
	return &NamesResult{Count: len(names), Names: names}, nil
}

func (s *Server) handleRGBToHSL(args json.RawMessage) (interface{}, error) {
	var a colorkit.RGB
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	hsl := colorkit.RGBToHSL(a)
	return &hsl, nil
}

func (s *Server) handleHSLToRGB(args json.RawMessage) (interface{}, error) {
	var a colorkit.HSL
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	rgb := colorkit.HSLToRGB(a)
	return &rgb, nil
}

func (s *Server) handleRGBToHex(args json.RawMessage) (interface{}, error) {
	var a colorkit.RGB
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &ColorResult{Color: colorkit.RGBToHex(a)}, nil
}

// === Transform Handlers ===

type ratioArgs struct {
	Color string   `json:"color"`
	Ratio *float64 `json:"ratio"`
}

func (s *Server) handleRatioTransform(args json.RawMessage, fn func(string, float64) (string, error)) (interface{}, error) {
	var a ratioArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Color == "" {
		return nil, errors.New("color is required")
	}
	if a.Ratio == nil {
		return nil, errors.New("ratio is required")
	}
	out, err := fn(a.Color, *a.Ratio)
	if err != nil {
		return nil, err
	}
	return &ColorResult{Color: out}, nil
}

type adjustHueArgs struct {
	Color   string   `json:"color"`
	Degrees *float64 `json:"degrees"`
}

func (s *Server) handleAdjustHue(args json.RawMessage) (interface{}, error) {
	var a adjustHueArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Color == "" {
		return nil, errors.New("color is required")
	}
	if a.Degrees == nil {
		return nil, errors.New("degrees is required")
	}
	out, err := colorkit.AdjustHue(a.Color, *a.Degrees)
	if err != nil {
		return nil, err
	}
	return &ColorResult{Color: out}, nil
}

func (s *Server) handleSingleTransform(args json.RawMessage, fn func(string) (string, error)) (interface{}, error) {
	a, err := decodeColorArgs(args)
	if err != nil {
		return nil, err
	}
	out, err := fn(a.Color)
	if err != nil {
		return nil, err
	}
	return &ColorResult{Color: out}, nil
}

type mixArgs struct {
	Color1 string   `json:"color1"`
	Color2 string   `json:"color2"`
	Ratio  *float64 `json:"ratio"`
}

func (s *Server) handleMix(args json.RawMessage) (interface{}, error) {
	var a mixArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Color1 == "" || a.Color2 == "" {
		return nil, errors.New("color1 and color2 are required")
	}
	ratio := 0.5
	if a.Ratio != nil {
		ratio = *a.Ratio
	}
	out, err := colorkit.MixColors(a.Color1, a.Color2, ratio)
	if err != nil {
		return nil, err
	}
	return &ColorResult{Color: out}, nil
}

// === Classification Handlers ===

func (s *Server) handleClassify(args json.RawMessage, fn func(string) (bool, error)) (interface{}, error) {
	a, err := decodeColorArgs(args)
	if err != nil {
		return nil, err
	}
	ok, err := fn(a.Color)
	if err != nil {
		return nil, err
	}
	return &ClassifyResult{Color: a.Color, Result: ok}, nil
}

// === Rendering Handlers ===

type swatchArgs struct {
	Colors []string `json:"colors"`
	Size   int      `json:"size"`
}

func (s *Server) handleSwatch(args json.RawMessage) (interface{}, error) {
	var a swatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Size == 0 {
		a.Size = s.cfg.SwatchSize
	}
	return imaging.RenderSwatch(a.Colors, a.Size)
}

type sampleImageArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleSampleImage(args json.RawMessage) (interface{}, error) {
	var a sampleImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type releaseImageArgs struct {
	Path string `json:"path"`
}

// handleReleaseImage drops one cached image, or all of them when no path
// is given.
func (s *Server) handleReleaseImage(args json.RawMessage) (interface{}, error) {
	var a releaseImageArgs
	if len(args) > 0 {
		if err := json.Unmarshal(args, &a); err != nil {
			return nil, err
		}
	}

	before := s.cache.Len()
	if a.Path == "" {
		s.cache.Clear()
	} else {
		s.cache.Evict(a.Path)
	}
	after := s.cache.Len()

	return &ReleaseResult{Released: before - after, Cached: after}, nil
}
