package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/alhambra-events/api/internal/catalog"
	"github.com/alhambra-events/api/internal/event"
)

// COGS heuristics for profitability reporting. The base package has no
// per-ingredient cost model, so its food cost is estimated as a ratio of its
// computed revenue; equipment cost covers wear and sub-rental. Paid menu
// add-ons use their real per-portion base cost instead. Keep the asymmetry.
var (
	baseFoodCostRatio  = decimal.RequireFromString("0.4")
	equipmentWearRatio = decimal.RequireFromString("0.3")
)

// Engine computes costs and profitability against a fixed catalog.
// All methods are pure: unknown catalog ids contribute zero rather than
// failing, so stale references never break a quote.
type Engine struct {
	cat *catalog.Catalog
}

// NewEngine creates an Engine over the given catalog.
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

// Quote is the per-line cost breakdown shown to the client.
type Quote struct {
	CateringBase decimal.Decimal
	MenuAddons   decimal.Decimal
	Equipment    decimal.Decimal
	Total        decimal.Decimal
	OverBudget   bool
}

// Profitability is the reporting view of a single event.
type Profitability struct {
	EventID   string
	EventName string
	Revenue   decimal.Decimal
	COGS      decimal.Decimal
	Profit    decimal.Decimal
}

// Summary aggregates profitability across a set of events.
type Summary struct {
	Revenue       decimal.Decimal
	COGS          decimal.Decimal
	Profit        decimal.Decimal
	MarginPercent decimal.Decimal
}

// CateringBaseCost prices the selected package for the given attendee count.
//
// Sub-option packages charge the matched option's per-head price times
// attendees; with no matching option the package contributes nothing yet.
// Tiered packages look up the tier whose [min, max] range contains the
// attendee count and fall back to the last declared tier when none matches
// (attendees below the first bound or past the open-ended sentinel). A
// fixed-price tier charges its price for the whole group regardless of count.
func (e *Engine) CateringBaseCost(packageID, subOptionID string, attendees int) decimal.Decimal {
	pkg := e.cat.FindPackage(packageID)
	if pkg == nil {
		return decimal.Zero
	}

	heads := decimal.NewFromInt(int64(attendees))

	if len(pkg.SubOptions) > 0 {
		for _, opt := range pkg.SubOptions {
			if opt.ID == subOptionID {
				return opt.Price.Mul(heads)
			}
		}
		return decimal.Zero
	}

	if len(pkg.PricingTiers) > 0 {
		tier := pkg.PricingTiers[len(pkg.PricingTiers)-1]
		for _, t := range pkg.PricingTiers {
			if attendees >= t.MinAttendees && attendees <= t.MaxAttendees {
				tier = t
				break
			}
		}
		if tier.FixedPrice {
			return tier.Price
		}
		return tier.Price.Mul(heads)
	}

	return decimal.Zero
}

// MenuAddonsCost sums per-head prices of the selected menu items. Items
// bundled into the base package carry a zero price and unknown ids are
// skipped, so only paid supplements contribute.
func (e *Engine) MenuAddonsCost(selectedMenu []string, attendees int) decimal.Decimal {
	heads := decimal.NewFromInt(int64(attendees))
	total := decimal.Zero
	for _, id := range selectedMenu {
		if item := e.cat.FindMenuItem(id); item != nil {
			total = total.Add(item.Price.Mul(heads))
		}
	}
	return total
}

// EquipmentCost sums flat per-unit rental prices times quantities.
func (e *Engine) EquipmentCost(equipment []event.SelectedEquipment) decimal.Decimal {
	total := decimal.Zero
	for _, line := range equipment {
		if item := e.cat.FindEquipment(line.ItemID); item != nil {
			total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
	}
	return total
}

// TotalCost is catering base + menu add-ons + equipment.
func (e *Engine) TotalCost(r *event.Record) decimal.Decimal {
	return e.CateringBaseCost(r.Catering.PackageID, r.Catering.SubOptionID, r.Attendees).
		Add(e.MenuAddonsCost(r.SelectedMenu, r.Attendees)).
		Add(e.EquipmentCost(r.Equipment))
}

// BuildQuote computes the full breakdown for one event. A zero budget means
// no budget was set and never flags over-budget.
func (e *Engine) BuildQuote(r *event.Record) Quote {
	q := Quote{
		CateringBase: e.CateringBaseCost(r.Catering.PackageID, r.Catering.SubOptionID, r.Attendees),
		MenuAddons:   e.MenuAddonsCost(r.SelectedMenu, r.Attendees),
		Equipment:    e.EquipmentCost(r.Equipment),
	}
	q.Total = q.CateringBase.Add(q.MenuAddons).Add(q.Equipment)
	q.OverBudget = r.Budget.IsPositive() && q.Total.GreaterThan(r.Budget)
	return q
}

// EventProfitability computes revenue, estimated COGS and profit for one
// event. Revenue follows the quote totals; COGS applies the heuristic ratios
// to the catering base and equipment revenue and real base costs to add-ons.
func (e *Engine) EventProfitability(r *event.Record) Profitability {
	heads := decimal.NewFromInt(int64(r.Attendees))

	cateringRevenue := e.CateringBaseCost(r.Catering.PackageID, r.Catering.SubOptionID, r.Attendees)
	addonsRevenue := e.MenuAddonsCost(r.SelectedMenu, r.Attendees)
	equipmentRevenue := e.EquipmentCost(r.Equipment)
	revenue := cateringRevenue.Add(addonsRevenue).Add(equipmentRevenue)

	cogs := cateringRevenue.Mul(baseFoodCostRatio)
	for _, id := range r.SelectedMenu {
		if item := e.cat.FindMenuItem(id); item != nil {
			cogs = cogs.Add(item.BaseCost.Mul(heads))
		}
	}
	cogs = cogs.Add(equipmentRevenue.Mul(equipmentWearRatio))

	return Profitability{
		EventID:   r.ID,
		EventName: r.Name,
		Revenue:   revenue,
		COGS:      cogs,
		Profit:    revenue.Sub(cogs),
	}
}

// Summarize computes per-event profitability rows and the aggregate.
// The margin is Σprofit / Σrevenue expressed as a percentage, zero when
// there is no revenue.
func (e *Engine) Summarize(events []event.Record) ([]Profitability, Summary) {
	rows := make([]Profitability, len(events))
	var sum Summary
	sum.Revenue, sum.COGS, sum.Profit = decimal.Zero, decimal.Zero, decimal.Zero

	for i := range events {
		rows[i] = e.EventProfitability(&events[i])
		sum.Revenue = sum.Revenue.Add(rows[i].Revenue)
		sum.COGS = sum.COGS.Add(rows[i].COGS)
		sum.Profit = sum.Profit.Add(rows[i].Profit)
	}

	if sum.Revenue.IsPositive() {
		sum.MarginPercent = sum.Profit.Div(sum.Revenue).Mul(decimal.NewFromInt(100))
	} else {
		sum.MarginPercent = decimal.Zero
	}
	return rows, sum
}
