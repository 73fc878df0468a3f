package engine

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const customIDPrefix = "custom_"

// ItemRef identifies a plan item: either a catalog row (integer id) or a
// user-entered custom item (opaque generated id). The zero value is neither
// and marshals as catalog id 0.
type ItemRef struct {
	CatalogID uint   `json:"-"`
	CustomID  string `json:"-"`
}

// CatalogRef references a catalog row by id.
func CatalogRef(id uint) ItemRef { return ItemRef{CatalogID: id} }

// NewCustomRef mints a fresh opaque id for a custom item. The prefix keeps
// custom ids distinguishable from catalog integer ids everywhere they are
// stored or compared.
func NewCustomRef() ItemRef {
	return ItemRef{CustomID: customIDPrefix + uuid.NewString()[:8]}
}

func (r ItemRef) IsCustom() bool { return r.CustomID != "" }

func (r ItemRef) String() string {
	if r.IsCustom() {
		return r.CustomID
	}
	return fmt.Sprintf("%d", r.CatalogID)
}

func (r ItemRef) MarshalJSON() ([]byte, error) {
	if r.IsCustom() {
		return json.Marshal(r.CustomID)
	}
	return json.Marshal(r.CatalogID)
}

func (r *ItemRef) UnmarshalJSON(data []byte) error {
	var n uint
	if err := json.Unmarshal(data, &n); err == nil {
		*r = ItemRef{CatalogID: n}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("item ref must be an integer or string: %w", err)
	}
	if !strings.HasPrefix(s, customIDPrefix) {
		return fmt.Errorf("item ref string %q lacks the %q prefix", s, customIDPrefix)
	}
	*r = ItemRef{CustomID: s}
	return nil
}
