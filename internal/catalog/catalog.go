// Package catalog serves the static product dataset. The CSV is read once at
// startup into an in-memory slice; a product's id is its position in the file.
package catalog

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

type Product struct {
	ID          int     `json:"id"`
	Label       string  `json:"Label"`
	Brand       string  `json:"brand"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Rank        float64 `json:"rank"`
	Ingredients string  `json:"ingredients"`
	Combination int     `json:"Combination"`
	Dry         int     `json:"Dry"`
	Normal      int     `json:"Normal"`
	Oily        int     `json:"Oily"`
	Sensitive   int     `json:"Sensitive"`
}

type Store struct {
	products []Product
}

// NewStore loads the product dataset from the given CSV path. Columns are
// resolved by header name so column order in the file does not matter.
func NewStore(csvPath string) (*Store, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("open product dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse product dataset: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("product dataset %s is empty", csvPath)
	}

	header := map[string]int{}
	for i, name := range records[0] {
		header[name] = i
	}

	field := func(row []string, name string) string {
		idx, ok := header[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	badCells := 0
	number := func(s string) float64 {
		if s == "" {
			return 0
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			badCells++
			return 0
		}
		return v
	}
	flag := func(s string) int {
		if s == "" {
			return 0
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			badCells++
			return 0
		}
		return n
	}

	products := make([]Product, 0, len(records)-1)
	for i, row := range records[1:] {
		products = append(products, Product{
			ID:          i,
			Label:       field(row, "Label"),
			Brand:       field(row, "brand"),
			Name:        field(row, "name"),
			Price:       number(field(row, "price")),
			Rank:        number(field(row, "rank")),
			Ingredients: field(row, "ingredients"),
			Combination: flag(field(row, "Combination")),
			Dry:         flag(field(row, "Dry")),
			Normal:      flag(field(row, "Normal")),
			Oily:        flag(field(row, "Oily")),
			Sensitive:   flag(field(row, "Sensitive")),
		})
	}

	if badCells > 0 {
		slog.Warn("Malformed numeric cells in product dataset defaulted to 0", "path", csvPath, "cells", badCells)
	}

	return &Store{products: products}, nil
}

func (s *Store) All() []Product {
	return s.products
}

func (s *Store) Get(id int) (Product, bool) {
	if id < 0 || id >= len(s.products) {
		return Product{}, false
	}
	return s.products[id], true
}

func (s *Store) Len() int {
	return len(s.products)
}
