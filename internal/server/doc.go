// Package server implements the MCP (Model Context Protocol) server for the
// shape recognizer.
//
// The server speaks JSON-RPC 2.0 over stdio so that MCP clients can load an
// image, inspect its pixels and classify the shape it contains.
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
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_unload: Drop an image from the cache
//
// Color Operations:
//   - image_sample_color: Get color at pixel and its foreground status
//
// Shape Recognition:
//   - shape_border_points: The four extreme black pixels
//   - shape_recognize: Classify the shape and measure it
//   - shape_annotate: Upscaled PNG with the border points marked
//
// shape_recognize accepts "tolerance" and "legacy_angles" to override the
// classifier options the server was started with.
//
// # Image Caching
//
// Images are cached by path and reused across tool calls for the lifetime
// of the process. Call image_unload after a file changes on disk.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New(detection.Options{}, version)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
