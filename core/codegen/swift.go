package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"briq-utils/core/table"
)

// Output file names.
const (
	PartCategoriesFile = "PartCategories.swift"
	PartColorsFile     = "PartColors.swift"
	ThemesFile         = "Themes.swift"
)

// Case is one enum case: a row name and its raw value.
type Case struct {
	Name  string
	Value int64
}

var swiftKeywords = map[string]struct{}{
	"associatedtype": {}, "class": {}, "deinit": {}, "enum": {}, "extension": {},
	"fileprivate": {}, "func": {}, "import": {}, "init": {}, "inout": {},
	"internal": {}, "let": {}, "open": {}, "operator": {}, "private": {},
	"protocol": {}, "public": {}, "static": {}, "struct": {}, "subscript": {},
	"typealias": {}, "var": {}, "break": {}, "case": {}, "continue": {},
	"default": {}, "defer": {}, "do": {}, "else": {}, "fallthrough": {},
	"for": {}, "guard": {}, "if": {}, "in": {}, "repeat": {}, "return": {},
	"switch": {}, "where": {}, "while": {}, "as": {}, "catch": {}, "false": {},
	"is": {}, "nil": {}, "rethrows": {}, "super": {}, "self": {}, "throw": {},
	"throws": {}, "true": {}, "try": {},
}

// Identifiers returns one unique Swift identifier per case, in input order.
func Identifiers(cases []Case) []string {
	out := make([]string, len(cases))
	used := make(map[string]struct{}, len(cases))

	for i, c := range cases {
		id := Identifier(c.Name)
		if id == "" {
			id = "_" + valueSuffix(c.Value)
		} else if startsWithDigit(id) {
			id = "_" + id
		}
		for {
			if _, taken := used[id]; !taken {
				break
			}
			id += valueSuffix(c.Value)
		}
		used[id] = struct{}{}

		if _, kw := swiftKeywords[id]; kw {
			id = "`" + id + "`"
		}
		out[i] = id
	}
	return out
}

// valueSuffix renders a raw value as identifier characters.
func valueSuffix(v int64) string {
	if v < 0 {
		return "Minus" + strconv.FormatInt(-v, 10)
	}
	return strconv.FormatInt(v, 10)
}

// Enum renders a Swift enum with an Int raw value per case.
func Enum(name string, cases []Case) string {
	ids := Identifiers(cases)

	var b strings.Builder
	fmt.Fprintf(&b, "enum %s: Int {\n", name)
	for i, c := range cases {
		fmt.Fprintf(&b, "    case %s = %d\n", ids[i], c.Value)
	}
	b.WriteString("}\n")
	return b.String()
}

// PartCategories renders the PartCategory enum.
func PartCategories(records []table.PartCategoryRecord) string {
	cases := make([]Case, len(records))
	for i, r := range records {
		cases[i] = Case{Name: r.Name, Value: int64(r.ID)}
	}
	return Enum("PartCategory", cases)
}

// Colors renders the PartColor enum.
func Colors(records []table.ColorRecord) string {
	cases := make([]Case, len(records))
	for i, r := range records {
		cases[i] = Case{Name: r.Name, Value: int64(r.ID)}
	}
	return Enum("PartColor", cases)
}

// Themes renders the Theme enum.
func Themes(records []table.ThemeRecord) string {
	cases := make([]Case, len(records))
	for i, r := range records {
		cases[i] = Case{Name: r.Name, Value: int64(r.ID)}
	}
	return Enum("Theme", cases)
}

// SwiftFiles renders every enum of the store.
func SwiftFiles(s *table.Store) []GeneratedFile {
	return []GeneratedFile{
		{Filename: PartCategoriesFile, Content: []byte(PartCategories(s.PartCategories))},
		{Filename: PartColorsFile, Content: []byte(Colors(s.Colors))},
		{Filename: ThemesFile, Content: []byte(Themes(s.Themes))},
	}
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}
