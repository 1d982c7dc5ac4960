package constvars

// DefaultLocationCodes maps normalized clinic location names to the short
// codes used in visit tokens. Injected through config so deployments can
// evolve the site list without touching sequencing logic.
var DefaultLocationCodes = map[string]string{
	"AL QOUZ":      "QOZ",
	"DIC 2":        "DIC2",
	"DIC 3":        "DIC3",
	"DIC 5":        "DIC5",
	"DIP 1":        "DIP1",
	"DIP 2":        "DIP2",
	"JEBAL ALI 1":  "JAB1",
	"JEBAL ALI 2":  "JAB2",
	"JEBAL ALI 3":  "JAB3",
	"JEBAL ALI 4":  "JAB4",
	"KHAWANEEJ":    "KWJ",
	"RUWAYYAH":     "RUW",
	"SAJJA":        "SAJJ",
	"SAIF":         "SAIF",
	"SONAPUR 1":    "SONA1",
	"SONAPUR 2":    "SONA2",
	"SONAPUR 3":    "SONA3",
	"SONAPUR 4":    "SONA4",
	"SONAPUR 5":    "SONA5",
	"SONAPUR 6":    "SONA6",
	"RAHABA":       "RAH",
}
