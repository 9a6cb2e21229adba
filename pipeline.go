package main

import (
	"fmt"
	"io"
	"strings"
)

const successMessage = "Item shop configuration has been exported successfully."

// run executes one generation pass. Nothing is written to cfg.OutputPath
// unless every earlier step succeeds.
func run(cfg Config, stderr io.Writer) (ShopResult, error) {
	items, err := LoadItems(cfg.ItemsPath)
	if err != nil {
		return ShopResult{}, err
	}
	loaded := len(items)
	items = FilterCatalog(items, cfg.Exclude)
	if len(items) == 0 {
		return ShopResult{}, ErrEmptyCatalog
	}
	if Verbose {
		fmt.Fprintf(stderr, "Loaded %d items from %s (%d excluded)\n", loaded, cfg.ItemsPath, loaded-len(items))
	}

	// Side data does not affect selection; a missing or broken file still aborts the run.
	data, err := LoadData(cfg.DataPath)
	if err != nil {
		return ShopResult{}, err
	}
	if Verbose {
		fmt.Fprintf(stderr, "Side data: %s\n", data.Summary())
	}

	sampler := NewRandomSampler()
	if cfg.HasSeed {
		sampler = NewSampler(cfg.Seed)
	}
	res, err := GenerateShop(items, sampler)
	if err != nil {
		return ShopResult{}, err
	}
	if Verbose {
		fmt.Fprintf(stderr, "Seed %d: daily [%s], featured [%s]\n", sampler.Seed(),
			strings.Join(cosmeticIDs(res.Daily), " "), strings.Join(cosmeticIDs(res.Featured), " "))
		fmt.Fprintln(stderr, FormatShop(&res.Config))
	}

	if err := ExportItemShopConfig(res.Config, cfg.OutputPath); err != nil {
		return ShopResult{}, err
	}
	return res, nil
}
