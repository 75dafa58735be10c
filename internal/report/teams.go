package report

import "strings"

// Franchise tri-codes, used as short names in calendar cells and ICS
// UIDs. Keyed by lower-cased full name.
var triCodes = map[string]string{
	"anaheim ducks":         "ANA",
	"arizona coyotes":       "ARI",
	"boston bruins":         "BOS",
	"buffalo sabres":        "BUF",
	"calgary flames":        "CGY",
	"carolina hurricanes":   "CAR",
	"chicago blackhawks":    "CHI",
	"colorado avalanche":    "COL",
	"columbus blue jackets": "CBJ",
	"dallas stars":          "DAL",
	"detroit red wings":     "DET",
	"edmonton oilers":       "EDM",
	"florida panthers":      "FLA",
	"los angeles kings":     "LAK",
	"minnesota wild":        "MIN",
	"montreal canadiens":    "MTL",
	"nashville predators":   "NSH",
	"new jersey devils":     "NJD",
	"new york islanders":    "NYI",
	"new york rangers":      "NYR",
	"ottawa senators":       "OTT",
	"philadelphia flyers":   "PHI",
	"pittsburgh penguins":   "PIT",
	"san jose sharks":       "SJS",
	"seattle kraken":        "SEA",
	"st. louis blues":       "STL",
	"tampa bay lightning":   "TBL",
	"toronto maple leafs":   "TOR",
	"utah hockey club":      "UTA",
	"utah mammoth":          "UTA",
	"vancouver canucks":     "VAN",
	"vegas golden knights":  "VGK",
	"washington capitals":   "WSH",
	"winnipeg jets":         "WPG",
}

// The seven Canadian NHL franchises, matched by full name.
var canadianFranchises = map[string]bool{
	"calgary flames":      true,
	"edmonton oilers":     true,
	"montreal canadiens":  true,
	"ottawa senators":     true,
	"toronto maple leafs": true,
	"vancouver canucks":   true,
	"winnipeg jets":       true,
}

// TriCode returns the franchise tri-code for a full team name. Unknown
// names fall back to the upper-cased last word so hand-edited rows
// still render something readable.
func TriCode(name string) string {
	if code, ok := triCodes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return code
	}
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "???"
	}
	return strings.ToUpper(fields[len(fields)-1])
}

func isCanadian(name string) bool {
	return canadianFranchises[strings.ToLower(strings.TrimSpace(name))]
}
