package optional

import (
	"encoding/json"
	"testing"
)

type patch struct {
	Name    Value[string]  `json:"name"`
	Address Value[string]  `json:"address"`
	Amount  Value[float64] `json:"amount"`
}

func TestValueDistinguishesOmittedNullAndSet(t *testing.T) {
	var p patch
	if err := json.Unmarshal([]byte(`{"name":"Finance","address":null}`), &p); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !p.Name.Set || p.Name.Null || p.Name.Value != "Finance" {
		t.Fatalf("unexpected name: %+v", p.Name)
	}
	if !p.Address.Set || !p.Address.Null {
		t.Fatalf("expected explicit null address, got %+v", p.Address)
	}
	if p.Address.Ptr() != nil {
		t.Fatal("expected nil pointer for null address")
	}
	if p.Amount.Set {
		t.Fatalf("expected omitted amount, got %+v", p.Amount)
	}
}

func TestValueRejectsWrongType(t *testing.T) {
	var p patch
	if err := json.Unmarshal([]byte(`{"amount":"lots"}`), &p); err == nil {
		t.Fatal("expected type error")
	}
}
