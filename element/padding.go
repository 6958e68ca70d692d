// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package element

import (
	"strconv"
	"strings"
)

// Padding holds four independent insets.
type Padding struct {
	Top, Right, Bottom, Left int
}

// ParsePadding reads the CSS shorthand of 1, 2 or 4 whitespace separated integers:
//
//	"8"          -> 8 8 8 8
//	"8 16"       -> 8 16 8 16 (vertical, horizontal)
//	"8 16 32 48" -> 8 16 32 48 (top, right, bottom, left)
//
// Any other count, or a part which is not an integer, results in zero padding.
func ParsePadding(s string) Padding {
	parts := strings.Fields(s)
	nums := make([]int, 0, len(parts))

	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Padding{}
		}

		nums = append(nums, n)
	}

	switch len(nums) {
	case 1:
		return Padding{nums[0], nums[0], nums[0], nums[0]}
	case 2:
		return Padding{nums[0], nums[1], nums[0], nums[1]}
	case 4:
		return Padding{nums[0], nums[1], nums[2], nums[3]}
	default:
		return Padding{}
	}
}

// IsZero returns true if all sides are zero.
func (p Padding) IsZero() bool {
	return p == Padding{}
}

// String returns the shortest shorthand which ParsePadding reads back into p.
func (p Padding) String() string {
	switch {
	case p.Top == p.Right && p.Top == p.Bottom && p.Top == p.Left:
		return strconv.Itoa(p.Top)
	case p.Top == p.Bottom && p.Right == p.Left:
		return strconv.Itoa(p.Top) + " " + strconv.Itoa(p.Right)
	default:
		return strconv.Itoa(p.Top) + " " + strconv.Itoa(p.Right) + " " + strconv.Itoa(p.Bottom) + " " + strconv.Itoa(p.Left)
	}
}
