// Package server implements the MCP (Model Context Protocol) server for color tools.
//
// This package provides a JSON-RPC 2.0 server that exposes colorkit's parsing,
// conversion and transform functions through the MCP protocol, so Claude and
// other MCP-compatible clients can compute exact colors instead of guessing.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Parsing and Conversion:
//   - color_parse: Color string to channels
//   - color_describe: Hex, RGB, alpha, HSL, luma and dark/light at once
//   - color_rgb_to_hsl, color_hsl_to_rgb, color_rgb_to_hex
//
// Transforms (all return "#RRGGBB"):
//   - color_lighten, color_darken, color_saturate, color_desaturate
//   - color_adjust_hue, color_complement
//   - color_mix, color_invert
//
// Classification:
//   - color_is_dark, color_is_light
//
// Rendering:
//   - color_swatch: Colors as a base64 PNG strip
//   - color_sample_image: Pixel color from an image file
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string, e.g. `unsupported color format: "bogus"`
//
// # Usage
//
//	srv := server.New(server.Config{SwatchSize: 64})
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
