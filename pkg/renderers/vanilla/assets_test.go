package vanilla

import (
	"io/fs"
	"strings"
	"testing"
)

func TestAssetsFSIncludesStylesheet(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), StylesheetName)
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	if !strings.Contains(string(data), "form#barcodes") {
		t.Fatalf("expected stylesheet to target the barcodes form")
	}
	if defaultStylesheet() != string(data) {
		t.Fatalf("default stylesheet should match the embedded asset")
	}
}
