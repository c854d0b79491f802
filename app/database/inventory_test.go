package database

import (
	"testing"
)

func TestUpsertInventoryReplacesByName(t *testing.T) {
	db := newTestDB(t)

	if ok, err := UpsertInventoryItem(db, "Rice", 10, "kg"); err != nil || !ok {
		t.Fatalf("first upsert failed: ok=%v err=%v", ok, err)
	}
	if ok, err := UpsertInventoryItem(db, "Rice", 25, "kg"); err != nil || !ok {
		t.Fatalf("second upsert failed: ok=%v err=%v", ok, err)
	}

	items := GetInventory(db)
	if len(items) != 1 {
		t.Fatalf("expected one row for the item name, got %d", len(items))
	}
	if items[0].Quantity != 25 {
		t.Errorf("quantity = %v, want latest value 25", items[0].Quantity)
	}
	if items[0].LastUpdated == "" {
		t.Error("last_updated was not stamped")
	}
}

func TestUpsertInventoryDistinctNames(t *testing.T) {
	db := newTestDB(t)

	if _, err := UpsertInventoryItem(db, "Rice", 10, "kg"); err != nil {
		t.Fatal(err)
	}
	if _, err := UpsertInventoryItem(db, "Towels", 40, "pcs"); err != nil {
		t.Fatal(err)
	}

	if got := len(GetInventory(db)); got != 2 {
		t.Errorf("expected 2 rows, got %d", got)
	}
}

func TestDeleteInventoryItem(t *testing.T) {
	db := newTestDB(t)

	if _, err := UpsertInventoryItem(db, "Rice", 10, "kg"); err != nil {
		t.Fatal(err)
	}
	id := GetInventory(db)[0].ID

	if ok, err := DeleteInventoryItem(db, id); err != nil || !ok {
		t.Fatalf("delete failed: ok=%v err=%v", ok, err)
	}
	if ok, _ := DeleteInventoryItem(db, id); ok {
		t.Error("second delete reported success")
	}

	items := GetInventory(db)
	if items == nil || len(items) != 0 {
		t.Errorf("expected empty slice after delete, got %v", items)
	}
}
