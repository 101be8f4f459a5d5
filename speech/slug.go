// SPDX-License-Identifier: ice License 1.0

package speech

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/zeebo/xxh3"
	"golang.org/x/text/unicode/norm"
)

const (
	maxSlugLength = 128
)

//nolint:gochecknoglobals // Compiled once.
var (
	slugInvalidChars = regexp.MustCompile(`[^\w\s-]`)
	slugSeparators   = regexp.MustCompile(`[-\s]+`)
)

// Slugify makes a lowercase ASCII file name out of text; accents are folded, punctuation dropped.
// Text without any usable characters falls back to its hash, overly long slugs are cut and suffixed with it.
func Slugify(text string) string {
	folded := make([]rune, 0, len(text))
	for _, r := range norm.NFKD.String(text) {
		if r < unicode.MaxASCII {
			folded = append(folded, r)
		}
	}
	slug := slugInvalidChars.ReplaceAllString(strings.ToLower(string(folded)), "")
	slug = strings.Trim(slugSeparators.ReplaceAllString(strings.TrimSpace(slug), "-"), "-_")
	if slug == "" {
		return strconv.FormatUint(xxh3.HashString(text), 16)
	}
	if len(slug) > maxSlugLength {
		slug = strings.TrimRight(slug[:maxSlugLength], "-_") + "-" + strconv.FormatUint(xxh3.HashString(text), 16)
	}

	return slug
}
