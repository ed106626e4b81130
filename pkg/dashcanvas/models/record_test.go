package models

import (
	"encoding/json"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestRecordUnmarshalJSONKeepsOrder(t *testing.T) {
	var rec Record
	src := `{"zeta": 1, "alpha": {"b": 2.5, "a": null}, "mid": [1, "x", {"k": true}]}`
	if err := json.Unmarshal([]byte(src), &rec); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(rec.Keys(), []string{"zeta", "alpha", "mid"}) {
		t.Errorf("Keys = %v, expected [zeta alpha mid]", rec.Keys())
	}

	v, _ := rec.Get("zeta")
	if v != int64(1) {
		t.Errorf("Expected int64(1), got %v (type: %T)", v, v)
	}

	alpha, _ := rec.Get("alpha")
	nested, ok := alpha.(Record)
	if !ok {
		t.Fatalf("Expected nested Record, got %T", alpha)
	}
	if !reflect.DeepEqual(nested.Keys(), []string{"b", "a"}) {
		t.Errorf("nested Keys = %v, expected [b a]", nested.Keys())
	}
	if b, _ := nested.Get("b"); b != 2.5 {
		t.Errorf("Expected 2.5, got %v", b)
	}

	mid, _ := rec.Get("mid")
	arr, ok := mid.([]any)
	if !ok || len(arr) != 3 {
		t.Fatalf("Expected 3-element array, got %#v", mid)
	}
	if _, ok := arr[2].(Record); !ok {
		t.Errorf("Expected object inside array to decode as Record, got %T", arr[2])
	}
}

func TestRecordUnmarshalJSONDuplicateKey(t *testing.T) {
	var rec Record
	if err := json.Unmarshal([]byte(`{"a": 1, "b": 2, "a": 3}`), &rec); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if rec.Len() != 2 {
		t.Fatalf("Expected 2 keys, got %d", rec.Len())
	}
	if v, _ := rec.Get("a"); v != int64(3) {
		t.Errorf("Expected last value to win, got %v", v)
	}
	if rec[0].Key != "a" {
		t.Errorf("Expected a to keep its first position, got %v", rec.Keys())
	}
}

func TestRecordUnmarshalJSONErrors(t *testing.T) {
	var rec Record
	if err := json.Unmarshal([]byte(`[1, 2]`), &rec); err == nil {
		t.Errorf("Expected error for array input")
	}
	if err := json.Unmarshal([]byte(`null`), &rec); err != nil || rec != nil {
		t.Errorf("Expected nil record for null, got %v, %v", rec, err)
	}
}

func TestRecordMarshalJSONRoundTrip(t *testing.T) {
	src := `{"z":1,"a":{"y":"b","x":[1,2]},"n":null}`
	var rec Record
	if err := json.Unmarshal([]byte(src), &rec); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	out, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != src {
		t.Errorf("Marshal = %s, expected %s", out, src)
	}
}

func TestRecordUnmarshalYAMLKeepsOrder(t *testing.T) {
	src := `
zeta: 1
alpha:
  b: 2.5
  a: ~
tags: [x, y]
`
	var rec Record
	if err := yaml.Unmarshal([]byte(src), &rec); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(rec.Keys(), []string{"zeta", "alpha", "tags"}) {
		t.Errorf("Keys = %v, expected [zeta alpha tags]", rec.Keys())
	}
	if v, _ := rec.Get("zeta"); v != int64(1) {
		t.Errorf("Expected int64(1), got %v (type: %T)", v, v)
	}
	alpha, _ := rec.Get("alpha")
	nested, ok := alpha.(Record)
	if !ok || !reflect.DeepEqual(nested.Keys(), []string{"b", "a"}) {
		t.Errorf("Expected nested record [b a], got %#v", alpha)
	}
	if a, ok := nested.Get("a"); !ok || a != nil {
		t.Errorf("Expected a: nil, got %v (present %v)", a, ok)
	}
}

func TestRecordFromMap(t *testing.T) {
	rec := RecordFromMap(map[string]any{
		"b": 1,
		"a": map[string]any{"d": 2, "c": 3},
	})

	if !reflect.DeepEqual(rec.Keys(), []string{"a", "b"}) {
		t.Errorf("Keys = %v, expected sorted [a b]", rec.Keys())
	}
	a, _ := rec.Get("a")
	nested, ok := a.(Record)
	if !ok || !reflect.DeepEqual(nested.Keys(), []string{"c", "d"}) {
		t.Errorf("Expected nested sorted record, got %#v", a)
	}
}

func TestRecordSet(t *testing.T) {
	var rec Record
	rec.Set("a", 1)
	rec.Set("b", 2)
	rec.Set("a", 3)

	if !reflect.DeepEqual(rec, Record{{Key: "a", Value: 3}, {Key: "b", Value: 2}}) {
		t.Errorf("Set produced %#v", rec)
	}
}

func TestDatasetFirst(t *testing.T) {
	if _, ok := Dataset(nil).First(); ok {
		t.Errorf("Expected no first record in empty dataset")
	}
	ds := Dataset{{{Key: "a", Value: 1}}, {{Key: "b", Value: 2}}}
	first, ok := ds.First()
	if !ok || first[0].Key != "a" {
		t.Errorf("First = %v, %v", first, ok)
	}
}

func TestDecodeDropPayload(t *testing.T) {
	p, err := DecodeDropPayload([]byte(`{"chartType": "pie", "xField": "region"}`))
	if err != nil {
		t.Fatalf("DecodeDropPayload failed: %v", err)
	}
	if p.ChartType != "pie" || p.XField != "region" {
		t.Errorf("Unexpected payload %+v", p)
	}

	if _, err := DecodeDropPayload([]byte(`not json`)); err == nil {
		t.Errorf("Expected error for malformed payload")
	}
}

func TestParseAxis(t *testing.T) {
	tests := []struct {
		input    string
		expected Axis
		ok       bool
	}{
		{"x", AxisX, true},
		{" Y ", AxisY, true},
		{"z", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseAxis(tt.input)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("ParseAxis(%q) = (%q, %v), expected (%q, %v)",
				tt.input, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestChartInstanceField(t *testing.T) {
	c := ChartInstance{XField: "a", YField: "b"}
	if c.Field(AxisX) != "a" || c.Field(AxisY) != "b" || c.Field("z") != "" {
		t.Errorf("Field returned unexpected values for %+v", c)
	}
}
