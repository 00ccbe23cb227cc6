package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema shared by every tool's "path" argument.
var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file",
}

// recognitionProperties are the optional classifier overrides accepted by
// the shape tools.
func recognitionProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": pathProperty,
		"tolerance": map[string]interface{}{
			"type":        "number",
			"description": "Absolute tolerance in pixels when comparing diagonals and sides. Default: server setting (0 = exact)",
		},
		"legacy_angles": map[string]interface{}{
			"type":        "boolean",
			"description": "Measure triangle angles with absolute coordinate differences, as older builds did. Default: server setting",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, the number of black (shape) pixels and whether the image is strictly black and white. The decoded image is cached for subsequent calls.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_unload",
			Description: "Drop an image from the cache so the next call reads it from disk again. Use after the file has changed.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},

		// Color Operations
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate and whether it counts as shape foreground (exactly opaque black).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
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

		// Shape Recognition
		{
			Name:        "shape_border_points",
			Description: "Find the rightmost, leftmost, bottommost and topmost black pixels of the shape, and the number of black pixels.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "shape_recognize",
			Description: "Classify the single black shape on a white background as triangle, circle, square or rectangle and report its measurements.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": recognitionProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "shape_annotate",
			Description: "Return an upscaled PNG (base64) of the image with the four border points marked and the probed right-to-bottom edge tinted.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"scale": map[string]interface{}{
						"type":        "integer",
						"description": "Integer upscale factor, 1 to 64. Default 8",
						"default":     8,
					},
					"marker_color": map[string]interface{}{
						"type":        "string",
						"description": "Marker color as hex (e.g., '#FF0000'). Default red",
						"default":     "#FF0000",
					},
				},
				"required": []string{"path"},
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
