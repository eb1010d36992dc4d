package enum

// ── Event lifecycle ──

const (
	EventStatusDraft     = "DRAFT"
	EventStatusQuoteSent = "QUOTE_SENT"
	EventStatusApproved  = "APPROVED"
	EventStatusCompleted = "COMPLETED"
	EventStatusCancelled = "CANCELLED"
)

// ── Location ──

const (
	LocationStanding = "STANDING"
	LocationInHouse  = "IN_HOUSE"
	LocationExternal = "EXTERNAL"
)

const (
	InHouseCooking = "COOKING"
	InHouseWine    = "WINE"
	InHouseLecture = "LECTURE"
)

// ── Checklist departments ──

const (
	DepartmentIT        = "IT"
	DepartmentLogistics = "LOGISTICS"
	DepartmentOps       = "OPS"
	DepartmentKitchen   = "KITCHEN"
	DepartmentSales     = "SALES"
)

// ── Catalog categories (no DB constraint, configurable labels) ──

const (
	MenuCategoryBreads   = "BREADS"
	MenuCategoryStarters = "STARTERS"
	MenuCategorySalads   = "SALADS"
	MenuCategoryMains    = "MAINS"
	MenuCategorySides    = "SIDES"
	MenuCategoryDesserts = "DESSERTS"
	MenuCategoryDrinks   = "DRINKS"
)

const (
	EquipmentCategorySeating     = "SEATING"
	EquipmentCategoryKitchen     = "KITCHEN"
	EquipmentCategoryServing     = "SERVING"
	EquipmentCategoryConsumables = "CONSUMABLES"
	EquipmentCategoryGeneral     = "GENERAL"
)

// IsValidEventStatus reports whether s is a known event status.
func IsValidEventStatus(s string) bool {
	switch s {
	case EventStatusDraft, EventStatusQuoteSent, EventStatusApproved,
		EventStatusCompleted, EventStatusCancelled:
		return true
	}
	return false
}

// IsValidLocationType reports whether s is a known location type.
func IsValidLocationType(s string) bool {
	switch s {
	case LocationStanding, LocationInHouse, LocationExternal:
		return true
	}
	return false
}

// IsValidInHouseSubType reports whether s is a known in-house activity type.
func IsValidInHouseSubType(s string) bool {
	switch s {
	case InHouseCooking, InHouseWine, InHouseLecture:
		return true
	}
	return false
}

// IsProductionEligible reports whether an event in this status should be
// picked up by kitchen production and procurement planning.
func IsProductionEligible(status string) bool {
	return status == EventStatusApproved || status == EventStatusQuoteSent
}
