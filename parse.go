package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/tidwall/match"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadItems reads a catalog file, one "name1:name2:price" item per line.
// ',' is accepted anywhere ':' is.
func LoadItems(path string) ([]Cosmetic, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: '%s'", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	items, err := parseItems(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// maxLineSize caps a single catalog line.
const maxLineSize = 1 << 20

// utf8BOM is stripped from the start of input files saved by Windows editors.
const utf8BOM = "\ufeff"

func parseItems(r io.Reader) ([]Cosmetic, error) {
	var items []Cosmetic
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for first := true; sc.Scan(); first = false {
		line := sc.Text()
		if first {
			line = strings.TrimPrefix(line, utf8BOM)
		}
		c, err := parseItemLine(line)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d is longer than %d bytes", ErrFormat, len(items)+1, maxLineSize)
		}
		return nil, fmt.Errorf("scan: %w", err)
	}
	return items, nil
}

// ParseItemLines parses catalog lines that are already split, e.g. from a request body.
func ParseItemLines(lines []string) ([]Cosmetic, error) {
	items := make([]Cosmetic, 0, len(lines))
	for _, line := range lines {
		c, err := parseItemLine(line)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, nil
}

func parseItemLine(line string) (Cosmetic, error) {
	line = strings.TrimSuffix(line, "\r")
	// Empty fields count: "A::5" is three fields.
	parts := strings.Split(strings.ReplaceAll(line, ",", ":"), ":")
	if len(parts) != 3 {
		return Cosmetic{}, fmt.Errorf("%w: line '%s' is not in the correct format", ErrFormat, line)
	}

	// Prices are 32-bit in the shop format.
	price, err := strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 32)
	if err != nil {
		return Cosmetic{}, fmt.Errorf("%w: price '%s' is not a valid integer", ErrFormat, parts[2])
	}

	c := Cosmetic{Id: parts[0] + ":" + parts[1], Price: int(price)}
	if err := validate.Struct(c); err != nil {
		return Cosmetic{}, fmt.Errorf("%w: line '%s': %v", ErrFormat, line, err)
	}
	return c, nil
}

// FilterCatalog drops items whose id matches any of the glob patterns.
func FilterCatalog(items []Cosmetic, patterns []string) []Cosmetic {
	if len(patterns) == 0 {
		return items
	}
	return lo.Reject(items, func(c Cosmetic, _ int) bool {
		return lo.SomeBy(patterns, func(p string) bool { return match.Match(c.Id, p) })
	})
}
