// Command fixtureset copies a curated set of garment images out of the
// catalog into per-outfit folders, one folder per look, so a full try-on
// flow can be exercised with a known-good set of inputs.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tryon-server/internal/catalog"
	"tryon-server/pkg/zip"
)

type item struct {
	Slot        string
	ID          int
	ProductType string
}

type outfit struct {
	Name      string
	StyleName string
	Category  string
	Items     []item
}

var outfits = []outfit{
	{
		Name:      "casual_outfit",
		StyleName: "Clean Minimal / Everyday",
		Category:  "Casual",
		Items: []item{
			{"top", 15187, "T-shirt"},
			{"bottom", 39386, "Jeans"},
			{"shoes", 39988, "Casual Shoes"},
			{"accessory", 11188, "Watch"},
		},
	},
	{
		Name:      "sportswear_outfit",
		StyleName: "Athletic / Performance Street",
		Category:  "Sportswear",
		Items: []item{
			{"top", 7964, "T-shirt"},
			{"layer", 15007, "Jacket"},
			{"bottom", 17625, "Track Pants"},
			{"shoes", 8913, "Sports Shoes"},
			{"accessory", 12735, "Cap"},
		},
	},
	{
		Name:      "formal_outfit",
		StyleName: "Classic Business / Sharp",
		Category:  "Formal",
		Items: []item{
			{"top", 11119, "Shirt"},
			{"outerwear", 31742, "Blazer"},
			{"bottom", 10257, "Trousers"},
			{"shoes", 10633, "Formal Shoes"},
			{"accessory_1", 41250, "Belt"},
			{"accessory_2", 36768, "Watch"},
		},
	},
}

func main() {
	imagesDir := flag.String("images", "images", "garment catalog directory")
	outputDir := flag.String("out", "test_outfits", "output directory for the fixture set")
	zipOut := flag.Bool("zip", false, "also write the fixture set as <out>.zip")
	flag.Parse()

	resolver := catalog.NewResolver(*imagesDir)
	title := cases.Title(language.English)

	if err := os.RemoveAll(*outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "fixtureset: %v\n", err)
		os.Exit(1)
	}

	copied, missing := 0, 0
	for _, o := range outfits {
		dir := filepath.Join(*outputDir, o.Name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "fixtureset: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("\n%s\n", strings.Repeat("=", 50))
		fmt.Printf("  %s  -  %s\n", title.String(strings.ReplaceAll(o.Name, "_", " ")), o.StyleName)
		fmt.Printf("  Category: %s\n", o.Category)
		fmt.Printf("%s\n", strings.Repeat("=", 50))

		for _, it := range o.Items {
			src, ext, err := resolver.Resolve(it.ID)
			if err != nil {
				fmt.Printf("  x  %-14s  %-16s  MISSING (%d)\n", it.Slot, it.ProductType, it.ID)
				missing++
				continue
			}
			typeSlug := strings.ReplaceAll(strings.ToLower(it.ProductType), " ", "_")
			dst := filepath.Join(dir, fmt.Sprintf("%s_%s_%d.%s", it.Slot, typeSlug, it.ID, ext))
			if err := copyFile(src, dst); err != nil {
				fmt.Fprintf(os.Stderr, "fixtureset: copy %s: %v\n", src, err)
				os.Exit(1)
			}
			fmt.Printf("  +  %-14s  %-16s  %s\n", it.Slot, it.ProductType, filepath.Base(dst))
			copied++
		}
	}

	if *zipOut {
		data, err := zip.ArchiveDir(*outputDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fixtureset: archive: %v\n", err)
			os.Exit(1)
		}
		name := *outputDir + ".zip"
		if err := os.WriteFile(name, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "fixtureset: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nArchive: %s\n", name)
	}

	fmt.Printf("\nDone: %d images copied, %d missing\n", copied, missing)
	fmt.Printf("Output: %s\n", *outputDir)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
