package main

import "errors"

var (
	ErrNotFound          = errors.New("file not found")
	ErrFormat            = errors.New("invalid format")
	ErrEmptyCatalog      = errors.New("no items were loaded")
	ErrDeserialize       = errors.New("failed to load AI data")
	ErrInsufficientItems = errors.New("not enough items in catalog")
	ErrWrite             = errors.New("failed to write config")
)
