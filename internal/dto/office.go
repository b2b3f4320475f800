package dto

// Office is a USACE organizational unit owning data.
type Office struct {
	Name      string `json:"name" yaml:"name"`
	LongName  string `json:"long-name" yaml:"long-name"`
	Type      string `json:"type" yaml:"type"`
	ReportsTo string `json:"reports-to,omitempty" yaml:"reports-to"`
}

// OfficeTypes maps office type codes to their descriptions. Read-only.
var OfficeTypes = map[string]string{
	"UNK":  "unknown",
	"HQ":   "corps headquarters",
	"MSC":  "division headquarters",
	"MSCR": "division regional",
	"DIS":  "district",
	"FOA":  "field operating activity",
}

func OfficeTypeDescription(code string) (string, bool) {
	d, ok := OfficeTypes[code]
	return d, ok
}
