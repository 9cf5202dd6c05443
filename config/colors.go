package config

import (
	"fmt"
	"strconv"
	"strings"
)

// parseHexColor accepts "#rrggbb" or "rrggbb" and returns the packed
// 0xRRGGBB pixel value the bar and border-color requests expect.
func parseHexColor(s string) (uint32, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
