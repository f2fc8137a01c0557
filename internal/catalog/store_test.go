package catalog

import (
	"context"
	"errors"
	"testing"
)

func testCatalog() *CatalogConfig {
	return &CatalogConfig{Safeguards: []SafeguardEntry{
		{
			ID:                "1.1",
			Title:             "Asset Inventory",
			Description:       "Maintain an asset inventory.",
			Domain:            "asset_management",
			RequiredToolTypes: []string{"inventory"},
		},
		{
			ID:          "2.1",
			Title:       "Software Inventory",
			Description: "Maintain a software inventory.",
		},
	}}
}

func TestMemoryStore_GetSafeguard(t *testing.T) {
	store := NewMemoryStore(testCatalog())
	ctx := context.Background()

	safeguard, err := store.GetSafeguard(ctx, "1.1")
	if err != nil {
		t.Fatalf("GetSafeguard() error = %v", err)
	}
	if safeguard.Title != "Asset Inventory" {
		t.Errorf("title = %q, want Asset Inventory", safeguard.Title)
	}

	_, err = store.GetSafeguard(ctx, "99.9")
	if !errors.Is(err, ErrSafeguardNotFound) {
		t.Errorf("GetSafeguard() error = %v, want ErrSafeguardNotFound", err)
	}
}

func TestMemoryStore_GetDomainRequirement(t *testing.T) {
	store := NewMemoryStore(testCatalog())
	ctx := context.Background()

	requirement, err := store.GetDomainRequirement(ctx, "1.1")
	if err != nil {
		t.Fatalf("GetDomainRequirement() error = %v", err)
	}
	if requirement == nil {
		t.Fatal("GetDomainRequirement() = nil, want restriction")
	}
	if requirement.Domain != "asset_management" {
		t.Errorf("domain = %q, want asset_management", requirement.Domain)
	}

	// Unrestricted safeguards and unknown ids both come back nil.
	for _, id := range []string{"2.1", "99.9"} {
		requirement, err = store.GetDomainRequirement(ctx, id)
		if err != nil {
			t.Fatalf("GetDomainRequirement(%s) error = %v", id, err)
		}
		if requirement != nil {
			t.Errorf("GetDomainRequirement(%s) = %+v, want nil", id, requirement)
		}
	}
}

func TestMemoryStore_ListSafeguardIDs(t *testing.T) {
	store := NewMemoryStore(testCatalog())

	ids, err := store.ListSafeguardIDs(context.Background())
	if err != nil {
		t.Fatalf("ListSafeguardIDs() error = %v", err)
	}
	if len(ids) != 2 || ids[0] != "1.1" || ids[1] != "2.1" {
		t.Errorf("ids = %v, want [1.1 2.1] in catalog order", ids)
	}
}
