package models

import (
	"encoding/json"
	"testing"
)

func TestIDUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		isZero  bool
		wantErr bool
	}{
		{in: `1`, want: "1"},
		{in: `"1700000000000"`, want: "1700000000000"},
		{in: `"abc"`, want: "abc"},
		{in: `3.0`, want: "3"},
		{in: `null`, isZero: true},
		{in: `3.5`, wantErr: true},
		{in: `true`, wantErr: true},
		{in: `{}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(tt.in), &id)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", id)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id.IsZero() != tt.isZero {
				t.Errorf("IsZero() = %v, want %v", id.IsZero(), tt.isZero)
			}
			if got := id.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIDKeepsJSONForm(t *testing.T) {
	for _, in := range []string{`7`, `"7"`, `"1700000000000"`, `null`} {
		var id ID
		if err := json.Unmarshal([]byte(in), &id); err != nil {
			t.Fatalf("unmarshal %s: %v", in, err)
		}
		out, err := json.Marshal(id)
		if err != nil {
			t.Fatalf("marshal %s: %v", in, err)
		}
		if string(out) != in {
			t.Errorf("got %s, want %s", out, in)
		}
	}
}

func TestIDEqual(t *testing.T) {
	if !IntID(1).Equal(StringID("1")) {
		t.Error("IntID(1) should equal StringID(\"1\")")
	}
	if IntID(1).Equal(IntID(2)) {
		t.Error("IntID(1) should not equal IntID(2)")
	}
	if (ID{}).Equal(StringID("")) {
		t.Error("zero id should not equal an empty string id")
	}
	if !(ID{}).Equal(ID{}) {
		t.Error("zero ids should be equal")
	}
}

func TestIDInt(t *testing.T) {
	if n, ok := StringID("1700000000000").Int(); !ok || n != 1700000000000 {
		t.Errorf("got %d, %v", n, ok)
	}
	if _, ok := StringID("a-uuid").Int(); ok {
		t.Error("non numeric string id should not be an int")
	}
	if _, ok := (ID{}).Int(); ok {
		t.Error("zero id should not be an int")
	}
}

func TestParseID(t *testing.T) {
	if got := ParseID("42"); !got.Equal(IntID(42)) {
		t.Errorf("ParseID(42) = %v", got)
	}
	out, _ := json.Marshal(ParseID("x1"))
	if string(out) != `"x1"` {
		t.Errorf("ParseID(x1) marshals to %s", out)
	}
}

func TestOptionalString(t *testing.T) {
	var req CreateAssetRequest
	body := `{"name":"Car","originalValue":10,"currentValue":8,"location":42,"description":"blue"}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := req.Record()
	if a.Location != "" {
		t.Errorf("non string location should be dropped, got %q", a.Location)
	}
	if a.Description != "blue" {
		t.Errorf("description = %q", a.Description)
	}
}

func TestLookupResource(t *testing.T) {
	r, ok := LookupResource("properties")
	if !ok || r.File != "properties.json" || r.Collection != "properties" {
		t.Errorf("got %+v, %v", r, ok)
	}
	if _, ok := LookupResource("budgets"); ok {
		t.Error("unknown resource should not be found")
	}
}
