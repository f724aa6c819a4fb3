package world

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSize is returned when a Size value has no entry in the dimension table.
var ErrUnknownSize = errors.New("unknown world size")

// Size selects one of the fixed world dimensions.
type Size int

const (
	SizeTiny Size = iota
	SizeSmall
	SizeMedium
	SizeLarge
)

type dimensions struct {
	width, height int
	name          string
}

var sizeTable = map[Size]dimensions{
	SizeTiny:   {1750, 900, "tiny"},
	SizeSmall:  {8400, 2400, "small"},
	SizeMedium: {12800, 3600, "medium"},
	SizeLarge:  {16800, 4800, "large"},
}

// Sizes returns every known size from smallest to largest.
func Sizes() []Size {
	return []Size{SizeTiny, SizeSmall, SizeMedium, SizeLarge}
}

// Dimensions returns the width and height in tiles for the size.
func (s Size) Dimensions() (width, height int, err error) {
	d, ok := sizeTable[s]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %d", ErrUnknownSize, int(s))
	}
	return d.width, d.height, nil
}

// String returns a human-readable size name.
func (s Size) String() string {
	if d, ok := sizeTable[s]; ok {
		return d.name
	}
	return "unknown"
}

// ParseSize converts a size name such as "medium" back to a Size.
func ParseSize(name string) (Size, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range Sizes() {
		if sizeTable[s].name == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSize, name)
}
