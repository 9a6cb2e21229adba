package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config controls one generator run. Zero-flag defaults reproduce the
// classic behavior: items.txt + data.json in, catalog_config.json out.
type Config struct {
	// ItemsPath is the line-oriented catalog.
	ItemsPath string
	// DataPath is the side-data JSON. It must exist and parse.
	DataPath string
	// OutputPath receives the shop config; an existing file is replaced.
	OutputPath string
	// Seed fixes the sampler when HasSeed is set; otherwise the clock is used.
	Seed    int64
	HasSeed bool
	// Exclude lists glob patterns of item ids kept out of the shop.
	Exclude []string
	// NoWait skips the "Press Enter" prompt.
	NoWait bool
	// Verbose prints the slot table and side-data summary to stderr.
	Verbose bool
}

// DefaultConfig returns the defaults used when no flag or variable is set.
func DefaultConfig() Config {
	return Config{
		ItemsPath:  "items.txt",
		DataPath:   "data.json",
		OutputPath: "catalog_config.json",
	}
}

// Verbose controls whether detailed progress is printed to stderr.
var Verbose bool

const usage = `Usage: item-shop-generator [flags]

Reads a cosmetic catalog and writes a randomized item shop config.
Every flag may also be set through the environment or a .env file
(ITEMSHOP_ITEMS, ITEMSHOP_DATA, ITEMSHOP_OUT, ITEMSHOP_SEED,
ITEMSHOP_EXCLUDE, ITEMSHOP_NO_WAIT, ITEMSHOP_VERBOSE).

Flags:
`

// LoadConfig loads .env (if present) and then parses args on top of the environment.
func LoadConfig(args []string) (Config, error) {
	_ = godotenv.Load()
	return parseConfig(args, os.Getenv, os.Stderr)
}

func parseConfig(args []string, getenv func(string) string, stderr io.Writer) (Config, error) {
	cfg := DefaultConfig()
	if err := applyEnv(&cfg, getenv); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("item-shop-generator", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.ItemsPath, "items", cfg.ItemsPath, "Path to the item catalog")
	fs.StringVar(&cfg.DataPath, "data", cfg.DataPath, "Path to the side-data JSON")
	fs.StringVar(&cfg.OutputPath, "out", cfg.OutputPath, "Path of the generated shop config")
	seed := fs.Int64("seed", cfg.Seed, "Seed for a reproducible shop (default: clock)")
	excl := stringList(cfg.Exclude)
	fs.Var(&excl, "exclude", "Glob pattern of item ids to leave out (repeatable)")
	fs.BoolVar(&cfg.NoWait, "no-wait", cfg.NoWait, "Exit without waiting for Enter")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Print the selected slots and data summary to stderr")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return Config{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.HasSeed = true
		}
	})
	cfg.Seed = *seed
	cfg.Exclude = excl
	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	cfg.ItemsPath = envOr(getenv, "ITEMSHOP_ITEMS", cfg.ItemsPath)
	cfg.DataPath = envOr(getenv, "ITEMSHOP_DATA", cfg.DataPath)
	cfg.OutputPath = envOr(getenv, "ITEMSHOP_OUT", cfg.OutputPath)

	if v := getenv("ITEMSHOP_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("ITEMSHOP_SEED: invalid seed %q", v)
		}
		cfg.Seed, cfg.HasSeed = seed, true
	}
	if v := getenv("ITEMSHOP_EXCLUDE"); v != "" {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.Exclude = append(cfg.Exclude, p)
			}
		}
	}

	var err error
	if cfg.NoWait, err = envBool(getenv, "ITEMSHOP_NO_WAIT", cfg.NoWait); err != nil {
		return err
	}
	if cfg.Verbose, err = envBool(getenv, "ITEMSHOP_VERBOSE", cfg.Verbose); err != nil {
		return err
	}
	return nil
}

func envOr(getenv func(string) string, key, def string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(getenv func(string) string, key string, def bool) (bool, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: invalid boolean %q", key, v)
	}
	return b, nil
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}
