package main

import "github.com/samber/lo"

// ShopComment is the fixed descriptive header written into every config.
const ShopComment = "BR Item Shop Config"

const (
	DailySlots    = 6
	FeaturedSlots = 2
)

// Cosmetic is a single catalog item. Id is "part1:part2" from the catalog line.
type Cosmetic struct {
	Id    string `json:"Id"`
	Price int    `json:"Price" validate:"gte=0"`
}

// ItemEntry is one shop slot. ItemGrants always holds exactly one id.
type ItemEntry struct {
	ItemGrants []string `json:"ItemGrants"`
	Price      int      `json:"Price"`
}

// ShopConfig is the document written to catalog_config.json.
// Field order is the JSON key order.
type ShopConfig struct {
	Comment   string    `json:"Comment"`
	Daily1    ItemEntry `json:"Daily1"`
	Daily2    ItemEntry `json:"Daily2"`
	Daily3    ItemEntry `json:"Daily3"`
	Daily4    ItemEntry `json:"Daily4"`
	Daily5    ItemEntry `json:"Daily5"`
	Daily6    ItemEntry `json:"Daily6"`
	Featured1 ItemEntry `json:"Featured1"`
	Featured2 ItemEntry `json:"Featured2"`
}

// NamedEntry pairs a slot key with its entry.
type NamedEntry struct {
	Slot  string
	Entry ItemEntry
}

// Slots returns the eight entries in output order.
func (c *ShopConfig) Slots() []NamedEntry {
	return []NamedEntry{
		{"Daily1", c.Daily1},
		{"Daily2", c.Daily2},
		{"Daily3", c.Daily3},
		{"Daily4", c.Daily4},
		{"Daily5", c.Daily5},
		{"Daily6", c.Daily6},
		{"Featured1", c.Featured1},
		{"Featured2", c.Featured2},
	}
}

// ItemShop is a past shop rotation recorded in the side data.
type ItemShop struct {
	DailyItems    []Cosmetic
	FeaturedItems []Cosmetic
}

// ItemPair keys ItemRelationships. Order is as written in data.json.
type ItemPair [2]string

// SideData mirrors data.json. It is loaded and checked on every run but does
// not take part in item selection.
type SideData struct {
	ItemWeights       map[string]float64
	FeedbackScores    map[string]float64
	ShopHistory       []ItemShop
	GoodShopsHistory  []ItemShop
	ItemRelationships map[ItemPair]int
}

func cosmeticIDs(items []Cosmetic) []string {
	return lo.Map(items, func(c Cosmetic, _ int) string { return c.Id })
}
