package utils

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// DeduplicateSlice trims values and drops empties and duplicates, keeping first occurrence order.
func DeduplicateSlice(input []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(input))

	for _, val := range input {
		val = strings.TrimSpace(val)
		if val != "" && !seen[val] {
			result = append(result, val)
			seen[val] = true
		}
	}

	return result
}

var copPrefix = regexp.MustCompile(`(?i)^cop\s*`)

// NormalizeCop coerces a COP edition to its numeric form: "COP26", " 26 " and "26.0" all
// become "26". Values that are not numbers yield "".
func NormalizeCop(raw string) string {
	s := strings.TrimSpace(raw)
	s = copPrefix.ReplaceAllString(s, "")
	if s == "" {
		return ""
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// CompareCops orders COP editions numerically; it is a cmp function for slices.SortFunc.
func CompareCops(a, b string) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	switch {
	case errA == nil && errB == nil:
		if fa < fb {
			return -1
		}
		if fa > fb {
			return 1
		}
		return 0
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return strings.Compare(a, b)
}

// CopLabel renders an edition for display, e.g. "COP 26".
func CopLabel(cop string) string {
	if cop == "" {
		return ""
	}
	return "COP " + cop
}

// NormalizeDomain lower-cases a hostname and strips a leading "www.". With registrable set the
// host is collapsed to its registrable domain (eTLD+1), e.g. "news.bbc.co.uk" -> "bbc.co.uk".
func NormalizeDomain(host string, registrable bool) string {
	d := strings.ToLower(strings.TrimSpace(host))
	d = strings.TrimSuffix(d, ".")
	d = strings.TrimPrefix(d, "www.")
	if d == "" {
		return ""
	}
	if registrable {
		if etld1, err := publicsuffix.EffectiveTLDPlusOne(d); err == nil {
			return etld1
		}
	}
	return d
}

// HostFromURL extracts the hostname of a link. Links without a scheme are accepted.
func HostFromURL(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

var entityTypeSuffix = regexp.MustCompile(`\s*\([^)]+\)$`)

// StripEntityType removes a trailing entity type, e.g. "boris johnson (PER)" -> "boris johnson".
func StripEntityType(label string) string {
	return entityTypeSuffix.ReplaceAllString(label, "")
}
