package bamboo

import (
	"fmt"
	"strings"
)

// Category tags an entity's role in collision rules.
// Declaration order is the canonical total order used by Classify.
type Category uint8

const (
	CategoryBall Category = iota
	CategoryBottom
	CategoryBlock
	CategoryPaddle
	CategoryBorder

	categoryCount
)

// String returns the lowercase category name used in config files.
func (c Category) String() string {
	switch c {
	case CategoryBall:
		return "ball"
	case CategoryBottom:
		return "bottom"
	case CategoryBlock:
		return "block"
	case CategoryPaddle:
		return "paddle"
	case CategoryBorder:
		return "border"
	default:
		return fmt.Sprintf("category(%d)", uint8(c))
	}
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return c < categoryCount
}

// Bit returns the category's bit in a CategoryMask.
func (c Category) Bit() CategoryMask {
	return 1 << c
}

// ParseCategory converts a config name into a Category.
func ParseCategory(s string) (Category, error) {
	for c := CategoryBall; c < categoryCount; c++ {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("bamboo: unknown category %q", s)
}

// CategoryMask is a set of categories.
type CategoryMask uint32

// MaskOf builds a mask from the given categories.
func MaskOf(cats ...Category) CategoryMask {
	var m CategoryMask
	for _, c := range cats {
		m |= c.Bit()
	}
	return m
}

// Has reports whether c is in the mask.
func (m CategoryMask) Has(c Category) bool {
	return m&c.Bit() != 0
}

// ParseMask converts a list of category names into a mask.
func ParseMask(names []string) (CategoryMask, error) {
	var m CategoryMask
	for _, name := range names {
		c, err := ParseCategory(name)
		if err != nil {
			return 0, err
		}
		m |= c.Bit()
	}
	return m, nil
}
