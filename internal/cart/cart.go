// Package cart holds the in-session shopping cart: an ordered sequence of
// catalog snapshots with a running total and a local, simulated checkout.
package cart

import (
	"strconv"
	"strings"
)

// Line is one catalog item copied into the cart at add time. It is a value
// snapshot: later catalog edits never reach lines already in the cart.
type Line struct {
	ProductID   int
	Name        string
	ImageURL    string
	Description string
	// PriceLabel is the locale-formatted unit price, e.g. "10.000".
	PriceLabel string
}

// Cart is an insertion-ordered sequence of lines. Duplicates by product id
// are allowed; every add appends an independent line.
type Cart struct {
	lines []Line
}

// Add appends a new line to the end of the cart.
func (c *Cart) Add(l Line) {
	c.lines = append(c.lines, l)
}

// Remove drops the line at index (0-based). Out-of-range indexes are a
// silent no-op; lines after the removed one shift down by one.
func (c *Cart) Remove(index int) {
	if index < 0 || index >= len(c.lines) {
		return
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
}

// Len is the line count, which is also the cart badge value.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines returns a copy of the sequence in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total sums the parsed price of every line. It is recomputed from the
// current sequence on each call, never cached across mutations.
func (c *Cart) Total() float64 {
	var sum float64
	for _, l := range c.lines {
		sum += ParsePrice(l.PriceLabel)
	}
	return sum
}

// CheckoutResult reports what a checkout covered.
type CheckoutResult struct {
	Items int
	Total float64
	Lines []Line
}

// Checkout snapshots the cart into a result and empties it. On an empty cart
// it degenerates to a zero-item, zero-total success.
func (c *Cart) Checkout() CheckoutResult {
	res := CheckoutResult{
		Items: len(c.lines),
		Total: c.Total(),
		Lines: c.Lines(),
	}
	c.lines = nil
	return res
}

// ParsePrice turns a grouped price label into an amount: grouping separators
// ("." and ",") are stripped and the remainder parsed as a decimal. A label
// that does not parse contributes 0; it never fails.
func ParsePrice(label string) float64 {
	cleaned := strings.NewReplacer(".", "", ",", "").Replace(strings.TrimSpace(label))
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}
