package catalog

// CategoryUnknown is returned for any product name not in the table.
const CategoryUnknown = "Unknown"

// Category labels used by the table. Downstream consumers (ledger, email)
// display these verbatim, so the strings are part of the external interface.
const (
	CategoryEzasekamelweni = "Ezasekamelweni"
	CategoryEzempilo       = "Ezempilo"
	CategoryEzokuthandeka  = "Ezokuthandeka"
)

var productCategories = map[string]string{
	"DONSA":                     CategoryEzasekamelweni,
	"MAPHIPHA":                  CategoryEzasekamelweni,
	"MIXER FOR MAN":             CategoryEzasekamelweni,
	"MV":                        CategoryEzasekamelweni,
	"RS":                        CategoryEzasekamelweni,
	"MD":                        CategoryEzasekamelweni,
	"NHLONIPHO":                 CategoryEzasekamelweni,
	"NHLONIPHO WENKANI":         CategoryEzasekamelweni,
	"DLISO LANGAPHANSI":         CategoryEzasekamelweni,
	"SCOBECOBE":                 CategoryEzasekamelweni,
	"DUMBA":                     CategoryEzasekamelweni,
	"FRANK":                     CategoryEzasekamelweni,
	"NSIZI MVUSA":               CategoryEzasekamelweni,
	"MASHESHISA":                CategoryEzasekamelweni,
	"MACHAMISA":                 CategoryEzasekamelweni,
	"MAHLANYISA":                CategoryEzasekamelweni,
	"MSHUBO":                    CategoryEzasekamelweni,
	"ASTHMA & DLISO":            CategoryEzempilo,
	"MBIZA EMHLOPHE":            CategoryEzempilo,
	"SKHONDLA KHONDLA":          CategoryEzempilo,
	"JIKELELE":                  CategoryEzempilo,
	"BP & SUGER":                CategoryEzempilo,
	"STAPUTAPU":                 CategoryEzempilo,
	"SLODWANA":                  CategoryEzempilo,
	"SHAYIZIFO IMBIZA":          CategoryEzempilo,
	"NSIZI SHAYIZIFO":           CategoryEzempilo,
	"NSIZI STROKE":              CategoryEzempilo,
	"NO 1 MBIZA":                CategoryEzempilo,
	"MHLABELO":                  CategoryEzempilo,
	"MBIZA EMHLOPHE (ISIWASHO)": CategoryEzempilo,
	"GUDUZA":                    CategoryEzempilo,
	"COMBO YAMA PILES":          CategoryEzempilo,
	"KHIPHA IDLISO POWDER":      CategoryEzempilo,
	"MOYI MOYI":                 CategoryEzokuthandeka,
	"IBHODLELA":                 CategoryEzokuthandeka,
	"SHUKELA":                   CategoryEzokuthandeka,
	"GANDA GANDA":               CategoryEzokuthandeka,
	"UHLANGA":                   CategoryEzokuthandeka,
	"KHIYE":                     CategoryEzokuthandeka,
	"SHINGAMU":                  CategoryEzokuthandeka,
	"INYAMAZANE":                CategoryEzokuthandeka,
	"INTELEZI":                  CategoryEzokuthandeka,
	"NDLEBEZIKHAYA ILANGA":      CategoryEzokuthandeka,
	"COMBO YAMATHUNZI (UBHAVU)": CategoryEzokuthandeka,
	"XABANISA":                  CategoryEzokuthandeka,
	"SKHAFULO":                  CategoryEzokuthandeka,
}

// Classify maps a product name to its category. Exact match, case sensitive;
// unknown names get CategoryUnknown rather than an error.
func Classify(productName string) string {
	if c, ok := productCategories[productName]; ok {
		return c
	}
	return CategoryUnknown
}
