package engine

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestItemRef_CatalogAndCustomJSON(t *testing.T) {
	b, err := json.Marshal(CatalogRef(42))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "42" {
		t.Fatalf("catalog ref marshaled as %s, want 42", b)
	}

	custom := NewCustomRef()
	if !custom.IsCustom() {
		t.Fatalf("NewCustomRef not flagged custom")
	}
	b, err = json.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.HasPrefix(string(b), `"custom_`) {
		t.Fatalf("custom ref marshaled as %s", b)
	}

	var back ItemRef
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != custom {
		t.Fatalf("round trip %+v != %+v", back, custom)
	}
}

func TestItemRef_UnmarshalRejectsUnprefixedString(t *testing.T) {
	var ref ItemRef
	if err := json.Unmarshal([]byte(`"42abc"`), &ref); err == nil {
		t.Fatalf("expected error for unprefixed string id")
	}
}

func TestItemRef_EqualityAcrossKinds(t *testing.T) {
	// A catalog id and a custom id never compare equal, even when the
	// numeric part matches.
	a := CatalogRef(7)
	b := ItemRef{CustomID: "custom_0000007"}
	if a == b {
		t.Fatalf("catalog and custom refs compared equal")
	}
	if CatalogRef(7) != CatalogRef(7) {
		t.Fatalf("identical catalog refs compared unequal")
	}
}
