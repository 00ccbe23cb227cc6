package server

import (
	"testing"
)

var expectedTools = []string{
	"image_load",
	"image_dimensions",
	"image_unload",
	"image_sample_color",
	"shape_border_points",
	"shape_recognize",
	"shape_annotate",
}

func toolsByName() map[string]Tool {
	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}
	return toolMap
}

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) != len(expectedTools) {
		t.Errorf("tool count: got %d, want %d", len(tools), len(expectedTools))
	}

	toolMap := toolsByName()
	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema == nil {
				t.Fatal("Tool InputSchema is nil")
			}
			if schemaType := tool.InputSchema["type"]; schemaType != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", schemaType)
			}
			if _, ok := tool.InputSchema["properties"].(map[string]interface{}); !ok {
				t.Error("InputSchema properties should be a map")
			}
		})
	}
}

func TestToolDefinitions_RequiredPath(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("required should be a []string")
			}
			found := false
			for _, r := range required {
				if r == "path" {
					found = true
				}
			}
			if !found {
				t.Error("path should be required")
			}

			props := tool.InputSchema["properties"].(map[string]interface{})
			if _, ok := props["path"]; !ok {
				t.Error("path property missing")
			}
		})
	}
}

func TestToolDefinitions_RecognizeOverrides(t *testing.T) {
	tool := toolsByName()["shape_recognize"]
	props := tool.InputSchema["properties"].(map[string]interface{})

	for name, wantType := range map[string]string{
		"tolerance":     "number",
		"legacy_angles": "boolean",
	} {
		prop, ok := props[name].(map[string]interface{})
		if !ok {
			t.Errorf("%s property missing", name)
			continue
		}
		if prop["type"] != wantType {
			t.Errorf("%s type: got %v, want %s", name, prop["type"], wantType)
		}
	}
}

func TestToolDefinitions_AnnotateDefaults(t *testing.T) {
	tool := toolsByName()["shape_annotate"]
	props := tool.InputSchema["properties"].(map[string]interface{})

	scale := props["scale"].(map[string]interface{})
	if scale["default"] != 8 {
		t.Errorf("scale default: got %v, want 8", scale["default"])
	}
	marker := props["marker_color"].(map[string]interface{})
	if marker["default"] != "#FF0000" {
		t.Errorf("marker_color default: got %v, want #FF0000", marker["default"])
	}
}

func TestHandleToolsList(t *testing.T) {
	s := newTestServer()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
	}

	resp := s.handleToolsList(req)

	if resp == nil {
		t.Fatal("handleToolsList returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}

	toolsList, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}

	if len(toolsList) != len(GetToolDefinitions()) {
		t.Errorf("Tool count: got %d, want %d", len(toolsList), len(GetToolDefinitions()))
	}
}
