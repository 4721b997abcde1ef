// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"time"

	"github.com/danielhkuo/minion-meister/store"
)

// IsDate reports whether s is exactly a YYYY-MM-DD calendar date. The
// round-trip check matters: time.Parse alone accepts unpadded components
// like 2022-1-2, which would never match stored dates again.
func IsDate(s string) bool {
	t, err := time.Parse(store.DateFormat, s)
	if err != nil {
		return false
	}
	return t.Format(store.DateFormat) == s
}

func invalidDateMessage(date string) string {
	return fmt.Sprintf("Date %s is not of format YYYY-MM-DD.", date)
}
