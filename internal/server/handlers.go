package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/shape-recognizer/internal/detection"
	"github.com/ironsheep/shape-recognizer/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "shape_recognize").
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
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_unload":
		return s.handleImageUnload(args)

	// Color Operations
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	// Shape Recognition
	case "shape_border_points":
		return s.handleShapeBorderPoints(args)
	case "shape_recognize":
		return s.handleShapeRecognize(args)
	case "shape_annotate":
		return s.handleShapeAnnotate(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
// An empty data string is omitted from the response.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{
		Code:    code,
		Message: message,
	}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   e,
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments and checks that a path was given.
func decodeArgs(args json.RawMessage, v interface{ imagePath() string }) error {
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	if v.imagePath() == "" {
		return fmt.Errorf("missing required argument: path")
	}
	return nil
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (a *imageLoadArgs) imagePath() string { return a.Path }

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

func (s *Server) handleImageUnload(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	s.cache.Evict(a.Path)
	return map[string]interface{}{"path": a.Path, "unloaded": true}, nil
}

// === Color Operation Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (a *imageSampleColorArgs) imagePath() string { return a.Path }

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

// === Shape Recognition Handlers ===

type shapeRecognizeArgs struct {
	Path         string   `json:"path"`
	Tolerance    *float64 `json:"tolerance,omitempty"`
	LegacyAngles *bool    `json:"legacy_angles,omitempty"`
}

func (a *shapeRecognizeArgs) imagePath() string { return a.Path }

// options applies the call's overrides on top of the server defaults.
func (a *shapeRecognizeArgs) options(defaults detection.Options) (detection.Options, error) {
	opts := defaults
	if a.Tolerance != nil {
		if *a.Tolerance < 0 {
			return opts, fmt.Errorf("tolerance must not be negative, got %v", *a.Tolerance)
		}
		opts.Tolerance = *a.Tolerance
	}
	if a.LegacyAngles != nil {
		opts.LegacyAngles = *a.LegacyAngles
	}
	return opts, nil
}

// RecognizeResult is the payload of the shape_recognize tool.
type RecognizeResult struct {
	Recognized   bool                   `json:"recognized"`
	Shape        detection.Shape        `json:"shape"`
	BorderPoints detection.BorderPoints `json:"border_points"`
	Width        int                    `json:"width"`
	Height       int                    `json:"height"`
}

func (s *Server) handleShapeBorderPoints(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	grid, err := imaging.LoadPixelGrid(s.cache, a.Path)
	if err != nil {
		return nil, err
	}
	border := detection.FindBorderPoints(grid)
	return &border, nil
}

func (s *Server) handleShapeRecognize(args json.RawMessage) (interface{}, error) {
	var a shapeRecognizeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	opts, err := a.options(s.opts)
	if err != nil {
		return nil, err
	}
	grid, err := imaging.LoadPixelGrid(s.cache, a.Path)
	if err != nil {
		return nil, err
	}

	shape, border := detection.Recognize(grid, opts)
	return &RecognizeResult{
		Recognized:   shape.Recognized(),
		Shape:        shape,
		BorderPoints: border,
		Width:        grid.Width(),
		Height:       grid.Height(),
	}, nil
}

type shapeAnnotateArgs struct {
	Path        string `json:"path"`
	Scale       int    `json:"scale"`
	MarkerColor string `json:"marker_color"`
}

func (a *shapeAnnotateArgs) imagePath() string { return a.Path }

func (s *Server) handleShapeAnnotate(args json.RawMessage) (interface{}, error) {
	var a shapeAnnotateArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale <= 0 {
		a.Scale = imaging.DefaultAnnotateScale
	}
	if a.Scale > imaging.MaxAnnotateScale {
		return nil, fmt.Errorf("scale %d too large (max %d)", a.Scale, imaging.MaxAnnotateScale)
	}
	if a.MarkerColor == "" {
		a.MarkerColor = "#FF0000"
	}
	marker, err := imaging.ParseHexColor(a.MarkerColor)
	if err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	border := detection.FindBorderPoints(imaging.NewPixelGrid(img))
	if !border.Found() {
		return nil, fmt.Errorf("no foreground pixels in %s", a.Path)
	}

	annotated := imaging.Annotate(img, border.Marks(), imaging.AnnotateOptions{
		Scale:       a.Scale,
		MarkerColor: marker,
		Path:        border.ProbedEdge(),
		Labels:      true,
	})
	return imaging.EncodeAnnotation(annotated)
}
