package main

import (
	"context"
	"io"
	"log/slog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" env:"WIKIKNOW_VERBOSE" help:"Enable debug logging"`

	Process ProcessCmd `cmd:"" help:"Extract knowledge from a directory of archived articles"`
	Export  ExportCmd  `cmd:"" help:"Export a record store as readable JSON"`
	Inspect InspectCmd `cmd:"" help:"Show the record count and first record of a store"`
}

// ProcessCmd is the "process" subcommand.
type ProcessCmd struct {
	Input           string `arg:"" help:"Directory of archived article files (.txt)"`
	Output          string `arg:"" help:"Directory to write the record store to"`
	Format          string `short:"f" enum:"gob,sqlite" default:"gob" env:"WIKIKNOW_FORMAT" help:"Record store format (gob, sqlite)"`
	CheckpointEvery int    `name:"checkpoint-every" default:"500" env:"WIKIKNOW_CHECKPOINT_EVERY" help:"Accepted records between checkpoints"`
	Tables          string `short:"t" type:"path" env:"WIKIKNOW_TABLES" help:"YAML file overriding the built-in tables"`
	Normalize       string `short:"n" enum:"nfc,nfkc,none" default:"nfc" env:"WIKIKNOW_NORMALIZE" help:"Unicode normalization form (nfc, nfkc, none)"`
	Dedup           bool   `env:"WIKIKNOW_DEDUP" help:"Drop records whose title was already seen"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Store  string `arg:"" help:"Record store file (.gob, .db)"`
	Output string `short:"o" help:"Output JSON file, - for stdout (default: wiki_knowledge_readable.json next to the store)"`
	Limit  int    `short:"l" default:"0" help:"Export only the first N records (0 for all)"`
}

// InspectCmd is the "inspect" subcommand.
type InspectCmd struct {
	Store string `arg:"" help:"Record store file (.gob, .db)"`
}
