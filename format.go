package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/pretty"
)

var prettyOpts = &pretty.Options{Width: 80, Prefix: "", Indent: "  ", SortKeys: false}

// MarshalShopConfig renders cfg as indented JSON with a trailing newline.
func MarshalShopConfig(cfg ShopConfig) ([]byte, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	return pretty.PrettyOptions(raw, prettyOpts), nil
}

// ExportItemShopConfig writes cfg to path, replacing any existing file. The
// content lands through a rename so readers never see a half-written config.
func ExportItemShopConfig(cfg ShopConfig, path string) (err error) {
	data, err := MarshalShopConfig(cfg)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrWrite, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".catalog_config-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// FormatShop renders the selected slots as a table for console output.
func FormatShop(cfg *ShopConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s %-32s %8s\n", "Slot", "Item", "Price")
	fmt.Fprintf(&b, "%-10s %-32s %8s\n", "----------", "--------------------------------", "--------")
	total := 0
	for _, s := range cfg.Slots() {
		total += s.Entry.Price
		fmt.Fprintf(&b, "%-10s %-32s %8d\n", s.Slot, strings.Join(s.Entry.ItemGrants, ","), s.Entry.Price)
	}
	fmt.Fprintf(&b, "%-10s %-32s %8s\n", "----------", "--------------------------------", "--------")
	fmt.Fprintf(&b, "%-10s %-32s %8d", "TOTAL", "", total)
	return b.String()
}
