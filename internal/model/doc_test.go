package model

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"testing"
)

func TestPackageDocComments(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "*", "doc.go"))
	if err != nil {
		t.Fatalf("Failed to list doc.go files: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("Expected doc.go files under internal/")
	}

	for _, path := range files {
		file, err := parser.ParseFile(token.NewFileSet(), path, nil, parser.ParseComments|parser.PackageClauseOnly)
		if err != nil {
			t.Errorf("Failed to parse %s: %v", path, err)
			continue
		}
		if file.Doc == nil {
			t.Errorf("%s: package comment must precede the package clause", path)
		}
	}
}
