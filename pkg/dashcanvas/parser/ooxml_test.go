package parser

import (
	"testing"
)

func TestResolveRelativePath(t *testing.T) {
	tests := []struct {
		target   string
		baseDir  string
		expected string
	}{
		{"../charts/chart1.xml", "xl/drawings", "xl/charts/chart1.xml"},
		{"/xl/drawings/drawing1.xml", "xl/drawings", "xl/drawings/drawing1.xml"},
		{"drawing1.xml", "xl/drawings", "xl/drawings/drawing1.xml"},
		{"worksheets/sheet1.xml", "xl", "xl/worksheets/sheet1.xml"},
	}

	for _, tt := range tests {
		result := resolveRelativePath(tt.target, tt.baseDir)
		if result != tt.expected {
			t.Errorf("resolveRelativePath(%q, %q) = %q, expected %q",
				tt.target, tt.baseDir, result, tt.expected)
		}
	}
}

func TestParseWorkbookRels(t *testing.T) {
	workbook := `<workbook><sheets>
<sheet name="Data" sheetId="1" r:id="rId1"/>
<sheet name="Summary" sheetId="2" r:id="rId2"/>
</sheets></workbook>`
	rels := `<Relationships>
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="/xl/worksheets/sheet2.xml"/>
<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

	sheets := parseWorkbookSheets([]byte(workbook))
	if sheets["rId1"] != "Data" || sheets["rId2"] != "Summary" {
		t.Fatalf("Unexpected sheets %v", sheets)
	}

	files := parseWorkbookRels([]byte(rels), sheets)
	if files["Data"] != "xl/worksheets/sheet1.xml" {
		t.Errorf("Expected Data -> xl/worksheets/sheet1.xml, got %q", files["Data"])
	}
	if files["Summary"] != "xl/worksheets/sheet2.xml" {
		t.Errorf("Expected Summary -> xl/worksheets/sheet2.xml, got %q", files["Summary"])
	}
	if len(files) != 2 {
		t.Errorf("Expected 2 sheet files, got %v", files)
	}
}

func TestFindDrawingRelationship(t *testing.T) {
	rels := `<Relationships>
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" Target="https://example.com"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/drawing" Target="../drawings/drawing1.xml"/>
</Relationships>`

	if got := findDrawingRelationship([]byte(rels)); got != "../drawings/drawing1.xml" {
		t.Errorf("findDrawingRelationship = %q", got)
	}
	if got := findDrawingRelationship([]byte(`<Relationships/>`)); got != "" {
		t.Errorf("Expected no drawing, got %q", got)
	}
}

func TestEMUToPixels(t *testing.T) {
	if got := EMUToPixels(914400); got != 96 {
		t.Errorf("EMUToPixels(914400) = %v, expected 96", got)
	}
}
