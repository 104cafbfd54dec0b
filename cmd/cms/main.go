// Package main provides the FloorMat CMS admin command-line tool. It
// is the operator-facing consumer of the document store: the same
// role the admin screens play on the website.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/yuhsien/floormat-cms/internal/config"
	"github.com/yuhsien/floormat-cms/internal/kv"
	"github.com/yuhsien/floormat-cms/internal/logging"
	"github.com/yuhsien/floormat-cms/internal/store"
)

// Version is set at build time.
var Version = "0.1.0"

const usage = `FloorMat CMS admin tool

Usage: cms <command> [flags]

Commands:
  info      Show document version, timestamp, and collection counts
  export    Write the document to a JSON file (-o path)
  import    Replace the document from a JSON file (-f path)
  reset     Discard all content and re-seed the defaults
  restore   Promote the backup slot to the live document
  journal   List the write journal
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()
	logging.Init(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	kvs, err := kv.OpenSQLite(cfg.DataDir)
	if err != nil {
		fatal(err)
	}
	defer kvs.Close()

	s, err := store.Open(kvs, store.Options{
		StrictUpdates:   cfg.StrictUpdates,
		ValidateOnWrite: cfg.ValidateOnWrite,
		JournalLimit:    cfg.JournalLimit,
	})
	if err != nil {
		fatal(err)
	}

	switch os.Args[1] {
	case "info":
		runInfo(s)
	case "export":
		runExport(s, os.Args[2:])
	case "import":
		runImport(s, os.Args[2:])
	case "reset":
		runReset(s)
	case "restore":
		runRestore(s)
	case "journal":
		runJournal(s)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "cms: %v\n", err)
	os.Exit(1)
}

func runInfo(s *store.Store) {
	doc := s.Document()
	fmt.Printf("cms v%s\n", Version)
	fmt.Printf("schema version: %s\n", doc.Version)
	fmt.Printf("last updated:   %s\n", doc.LastUpdated)
	fmt.Printf("projects:       %d\n", len(doc.Projects))
	fmt.Printf("products:       %d\n", len(doc.Products))
	fmt.Printf("videos:         %d\n", len(doc.YouTubeVideos))
}

func runExport(s *store.Store, args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("o", store.ExportFilename, "output file path")
	fs.Parse(args)

	result, err := s.ExportToFile(*out)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("exported %d bytes to %s (sha256 %s)\n", result.SizeBytes, result.Path, result.Checksum)
}

func runImport(s *store.Store, args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	in := fs.String("f", "", "input file path")
	fs.Parse(args)

	if *in == "" {
		fmt.Fprintln(os.Stderr, "cms: import requires -f <path>")
		os.Exit(2)
	}
	data, err := os.ReadFile(*in)
	if err != nil {
		fatal(err)
	}
	doc, err := s.Import(string(data))
	if err != nil {
		fatal(err)
	}
	fmt.Printf("imported %d projects, %d products, %d videos\n",
		len(doc.Projects), len(doc.Products), len(doc.YouTubeVideos))
}

func runReset(s *store.Store) {
	doc, err := s.Reset()
	if err != nil {
		fatal(err)
	}
	fmt.Printf("reset to seed content: %d projects, %d products\n",
		len(doc.Projects), len(doc.Products))
}

func runRestore(s *store.Store) {
	doc, err := s.RestoreBackup()
	if err != nil {
		fatal(err)
	}
	if doc == nil {
		fmt.Println("no backup available")
		return
	}
	fmt.Printf("restored backup from %s\n", doc.LastUpdated)
}

func runJournal(s *store.Store) {
	entries, err := s.Journal()
	if err != nil {
		fatal(err)
	}
	if len(entries) == 0 {
		fmt.Println("journal is empty")
		return
	}
	for _, e := range entries {
		fmt.Printf("%s  %-7s %-8s %s\n", e.Time().Format("2006-01-02 15:04:05"), e.Op, e.Entity, e.EntityID)
	}
}
