package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

// LoadData reads the side-data file. A missing or empty document aborts the run.
func LoadData(path string) (*SideData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: data file '%s'", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	d, err := loadDataFromString(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func loadDataFromString(dataJSON string) (*SideData, error) {
	dataJSON = strings.TrimPrefix(dataJSON, utf8BOM)
	if !gjson.Valid(dataJSON) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrDeserialize)
	}
	root := gjson.Parse(dataJSON)
	if !root.IsObject() {
		// "null" and scalar documents deserialize to nothing.
		return nil, fmt.Errorf("%w: expected an object, got %s", ErrDeserialize, root.Type)
	}

	var d SideData
	var err error
	if d.ItemWeights, err = parseFloatMap(root.Get("ItemWeights")); err != nil {
		return nil, fmt.Errorf("ItemWeights: %w", err)
	}
	if d.FeedbackScores, err = parseFloatMap(root.Get("FeedbackScores")); err != nil {
		return nil, fmt.Errorf("FeedbackScores: %w", err)
	}
	if d.ShopHistory, err = parseShops(root.Get("ShopHistory")); err != nil {
		return nil, fmt.Errorf("ShopHistory: %w", err)
	}
	if d.GoodShopsHistory, err = parseShops(root.Get("GoodShopsHistory")); err != nil {
		return nil, fmt.Errorf("GoodShopsHistory: %w", err)
	}
	if d.ItemRelationships, err = parseRelationships(root.Get("ItemRelationships")); err != nil {
		return nil, fmt.Errorf("ItemRelationships: %w", err)
	}
	return &d, nil
}

func absent(v gjson.Result) bool {
	return !v.Exists() || v.Type == gjson.Null
}

func parseFloatMap(v gjson.Result) (map[string]float64, error) {
	if absent(v) {
		return nil, nil
	}
	if !v.IsObject() {
		return nil, fmt.Errorf("%w: expected an object", ErrDeserialize)
	}
	m := make(map[string]float64)
	var err error
	v.ForEach(func(k, n gjson.Result) bool {
		if n.Type != gjson.Number {
			err = fmt.Errorf("%w: value for %q is not a number", ErrDeserialize, k.String())
			return false
		}
		m[k.String()] = n.Float()
		return true
	})
	return m, err
}

func parseShops(v gjson.Result) ([]ItemShop, error) {
	if absent(v) {
		return nil, nil
	}
	if !v.IsArray() {
		return nil, fmt.Errorf("%w: expected an array", ErrDeserialize)
	}
	var shops []ItemShop
	var err error
	v.ForEach(func(_, s gjson.Result) bool {
		if !s.IsObject() {
			err = fmt.Errorf("%w: shop entry is not an object", ErrDeserialize)
			return false
		}
		var shop ItemShop
		if shop.DailyItems, err = parseCosmetics(s.Get("DailyItems")); err != nil {
			return false
		}
		if shop.FeaturedItems, err = parseCosmetics(s.Get("FeaturedItems")); err != nil {
			return false
		}
		shops = append(shops, shop)
		return true
	})
	return shops, err
}

func parseCosmetics(v gjson.Result) ([]Cosmetic, error) {
	if absent(v) {
		return nil, nil
	}
	if !v.IsArray() {
		return nil, fmt.Errorf("%w: item list is not an array", ErrDeserialize)
	}
	var items []Cosmetic
	var err error
	v.ForEach(func(_, c gjson.Result) bool {
		id, price := c.Get("Id"), c.Get("Price")
		if !c.IsObject() || id.Type != gjson.String || price.Type != gjson.Number {
			err = fmt.Errorf("%w: item %s needs a string Id and a numeric Price", ErrDeserialize, c.Raw)
			return false
		}
		if price.Float() != float64(price.Int()) {
			err = fmt.Errorf("%w: item %s has a non-integer Price", ErrDeserialize, c.Raw)
			return false
		}
		items = append(items, Cosmetic{Id: id.String(), Price: int(price.Int())})
		return true
	})
	return items, err
}

// parseRelationships accepts either
//
//	[{"Items": ["a", "b"], "Count": 3}, ...]
//
// or the tuple-keyed object some serializers emit:
//
//	{"(a, b)": 3, ...}
func parseRelationships(v gjson.Result) (map[ItemPair]int, error) {
	if absent(v) {
		return nil, nil
	}
	m := make(map[ItemPair]int)
	var err error
	switch {
	case v.IsArray():
		v.ForEach(func(_, e gjson.Result) bool {
			items, count := e.Get("Items"), e.Get("Count")
			pair, ok := pairFromArray(items)
			if !ok || count.Type != gjson.Number {
				err = fmt.Errorf("%w: relationship %s needs two string Items and a numeric Count", ErrDeserialize, e.Raw)
				return false
			}
			m[pair] = int(count.Int())
			return true
		})
	case v.IsObject():
		v.ForEach(func(k, n gjson.Result) bool {
			pair, ok := pairFromTupleKey(k.String())
			if !ok || n.Type != gjson.Number {
				err = fmt.Errorf("%w: relationship key %q is not a (a, b) pair with a numeric value", ErrDeserialize, k.String())
				return false
			}
			m[pair] = int(n.Int())
			return true
		})
	default:
		return nil, fmt.Errorf("%w: expected an array or object", ErrDeserialize)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func pairFromArray(v gjson.Result) (ItemPair, bool) {
	arr := v.Array()
	if !v.IsArray() || len(arr) != 2 || arr[0].Type != gjson.String || arr[1].Type != gjson.String {
		return ItemPair{}, false
	}
	return ItemPair{arr[0].String(), arr[1].String()}, true
}

func pairFromTupleKey(k string) (ItemPair, bool) {
	k = strings.TrimSpace(k)
	if !strings.HasPrefix(k, "(") || !strings.HasSuffix(k, ")") {
		return ItemPair{}, false
	}
	a, b, ok := strings.Cut(k[1:len(k)-1], ",")
	if !ok || strings.Contains(b, ",") {
		return ItemPair{}, false
	}
	return ItemPair{strings.TrimSpace(a), strings.TrimSpace(b)}, true
}

// Summary is a one-line description for verbose output.
func (d *SideData) Summary() string {
	return fmt.Sprintf("%d weights, %d feedback scores, %d past shops (%d good), %d relationships",
		len(d.ItemWeights), len(d.FeedbackScores), len(d.ShopHistory), len(d.GoodShopsHistory), len(d.ItemRelationships))
}
