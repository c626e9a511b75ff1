package model

import (
	"strings"
)

type Position string

const (
	POS_UNKNOWN Position = "UNK"
	POS_QB      Position = "QB"
	POS_RB      Position = "RB"
	POS_WR      Position = "WR"
	POS_TE      Position = "TE"
	POS_DEF     Position = "DEF"
	POS_K       Position = "K"
)

// ParsePosition normalizes a raw position string to the canonical set.
// Sleeper and other player databases list defenses and kickers under a few
// aliases, so "DST" and "D/ST" collapse to DEF and "PK" collapses to K.
func ParsePosition(pos string) Position {
	pos = strings.ToLower(strings.TrimSpace(pos))
	switch pos {
	case "qb":
		return POS_QB
	case "rb":
		return POS_RB
	case "wr":
		return POS_WR
	case "te":
		return POS_TE
	case "def", "dst", "d/st":
		return POS_DEF
	case "k", "pk":
		return POS_K
	default:
		return POS_UNKNOWN
	}
}
