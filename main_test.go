package main

import (
	"strings"
	"testing"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"single scene", "single", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(tt.sceneType)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, s)
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
				}
				if s == nil {
					t.Fatalf("Expected scene for valid scene type '%s', got nil", tt.sceneType)
				}
				if len(s.Objects) == 0 {
					t.Errorf("Expected scene '%s' to contain objects", tt.sceneType)
				}
				if len(s.Lights) == 0 {
					t.Errorf("Expected scene '%s' to contain lights", tt.sceneType)
				}
			}
		})
	}
}

func TestCreateOutputDir(t *testing.T) {
	tests := []struct {
		name      string
		sceneType string
	}{
		{"default scene", "default"},
		{"single scene", "single"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outputDir := createOutputDir(tt.sceneType)

			if outputDir == "" {
				t.Fatalf("Expected non-empty output directory for scene '%s'", tt.sceneType)
			}
			if !strings.HasPrefix(outputDir, "output") {
				t.Errorf("Expected output directory to start with 'output', got '%s'", outputDir)
			}
			if !strings.Contains(outputDir, tt.sceneType) {
				t.Errorf("Expected output directory to contain '%s', got '%s'", tt.sceneType, outputDir)
			}
		})
	}
}

func TestDefaultRequest(t *testing.T) {
	req := defaultRequest(800, 600)

	if req.Width != 800 || req.Height != 600 {
		t.Errorf("Expected 800x600 request, got %dx%d", req.Width, req.Height)
	}
	if req.Horizontal <= 0 || req.Vertical <= 0 {
		t.Errorf("Expected positive screen dimensions, got %v x %v", req.Horizontal, req.Vertical)
	}
	if req.Eye.Equals(req.View) {
		t.Error("Expected eye and view to differ")
	}
}
