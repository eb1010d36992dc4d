package catalog

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Well-known catalog ids referenced by derivation rules.
const (
	// TablewareID is the per-diner tableware set whose quantity is kept in
	// sync with the event's attendee count.
	TablewareID = "full_tableware"

	// TabunID is the single mobile tabun unit checked for date conflicts.
	TabunID = "tabun"
)

var (
	ErrPackageShape   = errors.New("package must have exactly one of sub-options or pricing tiers")
	ErrDuplicateID    = errors.New("duplicate catalog id")
	ErrUnitMismatch   = errors.New("ingredient declared with conflicting units")
	ErrNegativePrice  = errors.New("catalog price must be >= 0")
	ErrEmptyCatalogID = errors.New("catalog entry missing id")
)

// SubOption is a named flat-price variant of a catering package. The price is
// per head; mutually exclusive with pricing tiers.
type SubOption struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// PricingTier is an attendee-count range with an associated price.
// FixedPrice means the price covers the whole group; otherwise it is per head.
type PricingTier struct {
	MinAttendees int             `json:"min_attendees"`
	MaxAttendees int             `json:"max_attendees"`
	Price        decimal.Decimal `json:"price"`
	FixedPrice   bool            `json:"is_fixed_price"`
}

// CateringPackage is a bookable service package. Exactly one of SubOptions or
// PricingTiers is populated.
type CateringPackage struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	SubOptions   []SubOption   `json:"sub_options,omitempty"`
	PricingTiers []PricingTier `json:"pricing_tiers,omitempty"`
}

// Ingredient is a single line of a menu item's production spec.
// QuantityPerPortion is scaled by the event's attendee count.
type Ingredient struct {
	Name               string          `json:"name"`
	Unit               string          `json:"unit"`
	QuantityPerPortion decimal.Decimal `json:"quantity_per_portion"`
}

// MenuItem is a dish or drink. Price is per-head revenue (zero for items
// bundled into the base package); BaseCost is the estimated per-head
// production cost used for COGS reporting.
type MenuItem struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	BaseCost    decimal.Decimal `json:"base_cost"`
	Ingredients []Ingredient    `json:"ingredients,omitempty"`
}

// EquipmentItem is a rentable unit with a flat per-unit price.
type EquipmentItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
}

// Kits are the fixed internal packing lists loaded for external events.
type Kits struct {
	Kitchen     []string `json:"kitchen"`
	Serving     []string `json:"serving"`
	Consumables []string `json:"consumables"`
}

// Catalog is the read-only reference data the engine prices against.
// Constructed once at startup and passed by reference; never mutated.
type Catalog struct {
	packages  []CateringPackage
	menu      []MenuItem
	equipment []EquipmentItem
	kits      Kits

	packageByID   map[string]*CateringPackage
	menuByID      map[string]*MenuItem
	equipmentByID map[string]*EquipmentItem
}

// New builds a Catalog from raw data and validates the invariants the engine
// relies on: exactly one pricing shape per package, unique ids, non-negative
// prices, and a consistent unit per ingredient name across menu items.
func New(packages []CateringPackage, menu []MenuItem, equipment []EquipmentItem, kits Kits) (*Catalog, error) {
	c := &Catalog{
		packages:      packages,
		menu:          menu,
		equipment:     equipment,
		kits:          kits,
		packageByID:   make(map[string]*CateringPackage, len(packages)),
		menuByID:      make(map[string]*MenuItem, len(menu)),
		equipmentByID: make(map[string]*EquipmentItem, len(equipment)),
	}

	for i := range c.packages {
		p := &c.packages[i]
		if p.ID == "" {
			return nil, ErrEmptyCatalogID
		}
		if (len(p.SubOptions) > 0) == (len(p.PricingTiers) > 0) {
			return nil, fmt.Errorf("package %s: %w", p.ID, ErrPackageShape)
		}
		if _, ok := c.packageByID[p.ID]; ok {
			return nil, fmt.Errorf("package %s: %w", p.ID, ErrDuplicateID)
		}
		for _, o := range p.SubOptions {
			if o.Price.IsNegative() {
				return nil, fmt.Errorf("package %s option %s: %w", p.ID, o.ID, ErrNegativePrice)
			}
		}
		for _, t := range p.PricingTiers {
			if t.Price.IsNegative() {
				return nil, fmt.Errorf("package %s tier %d-%d: %w", p.ID, t.MinAttendees, t.MaxAttendees, ErrNegativePrice)
			}
		}
		c.packageByID[p.ID] = p
	}

	units := make(map[string]string)
	for i := range c.menu {
		m := &c.menu[i]
		if m.ID == "" {
			return nil, ErrEmptyCatalogID
		}
		if _, ok := c.menuByID[m.ID]; ok {
			return nil, fmt.Errorf("menu item %s: %w", m.ID, ErrDuplicateID)
		}
		if m.Price.IsNegative() || m.BaseCost.IsNegative() {
			return nil, fmt.Errorf("menu item %s: %w", m.ID, ErrNegativePrice)
		}
		for _, ing := range m.Ingredients {
			if u, ok := units[ing.Name]; ok && u != ing.Unit {
				return nil, fmt.Errorf("ingredient %q: %s vs %s: %w", ing.Name, u, ing.Unit, ErrUnitMismatch)
			}
			units[ing.Name] = ing.Unit
		}
		c.menuByID[m.ID] = m
	}

	for i := range c.equipment {
		e := &c.equipment[i]
		if e.ID == "" {
			return nil, ErrEmptyCatalogID
		}
		if _, ok := c.equipmentByID[e.ID]; ok {
			return nil, fmt.Errorf("equipment %s: %w", e.ID, ErrDuplicateID)
		}
		if e.Price.IsNegative() {
			return nil, fmt.Errorf("equipment %s: %w", e.ID, ErrNegativePrice)
		}
		c.equipmentByID[e.ID] = e
	}

	return c, nil
}

// FindPackage returns the package with the given id, or nil.
func (c *Catalog) FindPackage(id string) *CateringPackage {
	return c.packageByID[id]
}

// FindMenuItem returns the menu item with the given id, or nil.
func (c *Catalog) FindMenuItem(id string) *MenuItem {
	return c.menuByID[id]
}

// FindEquipment returns the equipment item with the given id, or nil.
func (c *Catalog) FindEquipment(id string) *EquipmentItem {
	return c.equipmentByID[id]
}

// Packages returns the packages in declaration order.
func (c *Catalog) Packages() []CateringPackage { return c.packages }

// Menu returns the menu items in declaration order.
func (c *Catalog) Menu() []MenuItem { return c.menu }

// Equipment returns the equipment items in declaration order.
func (c *Catalog) Equipment() []EquipmentItem { return c.equipment }

// InternalKits returns the fixed packing lists.
func (c *Catalog) InternalKits() Kits { return c.kits }
