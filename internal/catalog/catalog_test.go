package catalog_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/alhambra-events/api/internal/catalog"
)

func TestDefault(t *testing.T) {
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}
	if len(c.Packages()) == 0 || len(c.Menu()) == 0 || len(c.Equipment()) == 0 {
		t.Fatal("default catalog is missing sections")
	}
	if c.FindEquipment(catalog.TablewareID) == nil {
		t.Fatal("tableware entry missing")
	}
	if c.FindEquipment(catalog.TabunID) == nil {
		t.Fatal("tabun entry missing")
	}
	if len(c.InternalKits().Kitchen) == 0 {
		t.Fatal("kitchen kit missing")
	}
}

func TestFind_UnknownIDs(t *testing.T) {
	c := catalog.MustDefault()
	if c.FindPackage("nope") != nil || c.FindMenuItem("nope") != nil || c.FindEquipment("nope") != nil {
		t.Fatal("unknown ids must resolve to nil")
	}
}

func TestNew_PackageShape(t *testing.T) {
	bad := []catalog.CateringPackage{{
		ID:   "both",
		Name: "Both shapes",
		SubOptions: []catalog.SubOption{
			{ID: "a", Name: "A", Price: decimal.NewFromInt(10)},
		},
		PricingTiers: []catalog.PricingTier{
			{MinAttendees: 0, MaxAttendees: 9, Price: decimal.NewFromInt(100)},
		},
	}}
	if _, err := catalog.New(bad, nil, nil, catalog.Kits{}); !errors.Is(err, catalog.ErrPackageShape) {
		t.Fatalf("got %v, want ErrPackageShape", err)
	}

	neither := []catalog.CateringPackage{{ID: "empty", Name: "Neither shape"}}
	if _, err := catalog.New(neither, nil, nil, catalog.Kits{}); !errors.Is(err, catalog.ErrPackageShape) {
		t.Fatalf("got %v, want ErrPackageShape", err)
	}
}

func TestNew_DuplicateID(t *testing.T) {
	menu := []catalog.MenuItem{
		{ID: "dish", Name: "Dish"},
		{ID: "dish", Name: "Dish again"},
	}
	if _, err := catalog.New(nil, menu, nil, catalog.Kits{}); !errors.Is(err, catalog.ErrDuplicateID) {
		t.Fatalf("got %v, want ErrDuplicateID", err)
	}
}

func TestNew_UnitMismatch(t *testing.T) {
	menu := []catalog.MenuItem{
		{
			ID: "a", Name: "A",
			Ingredients: []catalog.Ingredient{{Name: "olive oil", Unit: "ml", QuantityPerPortion: decimal.NewFromInt(15)}},
		},
		{
			ID: "b", Name: "B",
			Ingredients: []catalog.Ingredient{{Name: "olive oil", Unit: "l", QuantityPerPortion: decimal.NewFromInt(1)}},
		},
	}
	if _, err := catalog.New(nil, menu, nil, catalog.Kits{}); !errors.Is(err, catalog.ErrUnitMismatch) {
		t.Fatalf("got %v, want ErrUnitMismatch", err)
	}
}

func TestNew_NegativePrice(t *testing.T) {
	equipment := []catalog.EquipmentItem{{ID: "e", Name: "E", Price: decimal.NewFromInt(-1)}}
	if _, err := catalog.New(nil, nil, equipment, catalog.Kits{}); !errors.Is(err, catalog.ErrNegativePrice) {
		t.Fatalf("got %v, want ErrNegativePrice", err)
	}
}

func TestNew_EmptyID(t *testing.T) {
	menu := []catalog.MenuItem{{Name: "anonymous"}}
	if _, err := catalog.New(nil, menu, nil, catalog.Kits{}); !errors.Is(err, catalog.ErrEmptyCatalogID) {
		t.Fatalf("got %v, want ErrEmptyCatalogID", err)
	}
}
