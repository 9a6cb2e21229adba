package main

import "fmt"

// CreateItemEntry wraps items[index]. Out-of-range indexes give an empty grant
// priced at 0.
func CreateItemEntry(items []Cosmetic, index int) ItemEntry {
	if index >= 0 && index < len(items) {
		item := items[index]
		return ItemEntry{
			ItemGrants: []string{item.Id},
			Price:      item.Price,
		}
	}
	return ItemEntry{
		ItemGrants: []string{""},
		Price:      0,
	}
}

// AssembleShopConfig fills the daily slots from daily[0:6] and the featured
// slots from featured[0:2].
func AssembleShopConfig(daily, featured []Cosmetic) ShopConfig {
	return ShopConfig{
		Comment:   ShopComment,
		Daily1:    CreateItemEntry(daily, 0),
		Daily2:    CreateItemEntry(daily, 1),
		Daily3:    CreateItemEntry(daily, 2),
		Daily4:    CreateItemEntry(daily, 3),
		Daily5:    CreateItemEntry(daily, 4),
		Daily6:    CreateItemEntry(daily, 5),
		Featured1: CreateItemEntry(featured, 0),
		Featured2: CreateItemEntry(featured, 1),
	}
}

// ShopResult holds the assembled config together with the draws behind it.
type ShopResult struct {
	Config   ShopConfig
	Daily    []Cosmetic
	Featured []Cosmetic
}

// GenerateShop draws the daily items, then the featured items from what is
// left, so no item is picked twice. catalog itself is not modified.
func GenerateShop(catalog []Cosmetic, s *Sampler) (ShopResult, error) {
	pool := make([]Cosmetic, len(catalog))
	copy(pool, catalog)

	daily, err := s.GenerateRandomItems(&pool, DailySlots)
	if err != nil {
		return ShopResult{}, fmt.Errorf("daily items: %w", err)
	}
	featured, err := s.GenerateRandomItems(&pool, FeaturedSlots)
	if err != nil {
		return ShopResult{}, fmt.Errorf("featured items: %w", err)
	}

	return ShopResult{
		Config:   AssembleShopConfig(daily, featured),
		Daily:    daily,
		Featured: featured,
	}, nil
}
