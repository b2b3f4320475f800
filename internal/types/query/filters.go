package query

import (
	"regexp"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/hydro-api/internal/apperr"
)

// Catalog filters a catalog listing. Once the first page is served, the
// filters travel inside the page cursor and request parameters are ignored.
type Catalog struct {
	Office             string `query:"office"`
	IDLike             string `query:"like"`
	LocCategoryLike    string `query:"location-category-like"`
	LocGroupLike       string `query:"location-group-like"`
	TsCategoryLike     string `query:"timeseries-category-like"`
	TsGroupLike        string `query:"timeseries-group-like"`
	BoundingOfficeLike string `query:"bounding-office-like"`
	IncludeExtents     bool   `query:"include-extents"`
	ExcludeEmpty       bool   `query:"exclude-empty"`
}

type Clobs struct {
	Office        string `query:"office"`
	IDLike        string `query:"like"`
	IncludeValues bool   `query:"include-values"`
}

type Blobs struct {
	Office string `query:"office"`
	IDLike string `query:"like"`
}

type Pools struct {
	Office          string `query:"office"`
	ProjectIDMask   string `query:"project-id-mask"`
	NameMask        string `query:"name-mask"`
	BottomLevelMask string `query:"bottom-level-mask"`
	TopLevelMask    string `query:"top-level-mask"`
	IncludeExplicit bool   `query:"include-explicit"`
	IncludeImplicit bool   `query:"include-implicit"`
}

type Levels struct {
	Office      string `query:"office"`
	LevelIDMask string `query:"level-id-mask"`
}

type Descriptors struct {
	Office  string `query:"office"`
	IDRegex string `query:"timeseries-id-regex"`
}

// TimeSeries selects the values of one series inside [Begin, End].
type TimeSeries struct {
	Office string
	Name   string
	Begin  time.Time
	End    time.Time
}

// Pattern is a compiled case-insensitive "like" filter. The zero value and
// an empty pattern match everything.
type Pattern struct {
	re *regexp.Regexp
}

func Compile(field, expr string) (Pattern, error) {
	if expr == "" {
		return Pattern{}, nil
	}
	re, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return Pattern{}, apperr.NewValidationWrap("invalid "+field+" pattern", err)
	}
	return Pattern{re: re}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(expr string) Pattern {
	p, err := Compile("pattern", expr)
	if err != nil {
		panic(err)
	}
	return p
}

// MaskToRegex translates a glob mask ("*" any run, "?" one character) into an
// anchored regular expression.
func MaskToRegex(mask string) string {
	var b strings.Builder
	b.WriteByte('^')
	for _, r := range mask {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteByte('.')
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteByte('$')
	return b.String()
}

// CompileMask compiles a glob mask; an empty mask matches everything.
func CompileMask(field, mask string) (Pattern, error) {
	if mask == "" {
		return Pattern{}, nil
	}
	return Compile(field, MaskToRegex(mask))
}

// Regex returns the expression to hand to a database, or "" when p matches
// everything.
func (p Pattern) Regex() string {
	if p.re == nil {
		return ""
	}
	return strings.TrimPrefix(p.re.String(), "(?i)")
}

func (p Pattern) Match(s string) bool {
	return p.re == nil || p.re.MatchString(s)
}
