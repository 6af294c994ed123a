package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/marcelsud/library-console/catalog/fallback"
)

/* validate-dataset - Standalone CLI tool to validate a fallback dataset
 * Usage: go run cmd/validate-dataset/main.go [dataset.yaml]
 * Without arguments the embedded dataset is checked.
 * Exit codes: 0 = valid, 1 = invalid
 */

func main() {
	source := "embedded dataset"
	load := fallback.Load
	if len(os.Args) > 1 {
		source = os.Args[1]
		load = func() (*fallback.Dataset, error) {
			return fallback.LoadFile(os.Args[1])
		}
	}

	fmt.Printf("Validating %s\n", source)
	fmt.Println(strings.Repeat("-", 50))

	data, err := load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ VALIDATION FAILED\n\n")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ VALIDATION PASSED\n\n")
	fmt.Printf("Genres:  %d\n", len(data.Genres()))
	fmt.Printf("Authors: %d\n", len(data.Authors()))
	fmt.Printf("Books:   %d\n", len(data.Books()))

	for _, b := range data.Books() {
		fmt.Printf("\n%d. %s\n", b.ID, b.Title)
		fmt.Printf("   Author: %s\n", b.AuthorName)
		fmt.Printf("   Genre:  %s\n", b.GenreName)
		if b.PublicationYear != nil {
			fmt.Printf("   Year:   %d\n", *b.PublicationYear)
		}
	}
}
