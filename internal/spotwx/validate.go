package spotwx

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gagreene/spotwx/internal/models"
)

// Display modes supported by the provider. Both embed the forecast table
// in the page; table_prometheus is the variant the scraper was written
// against and is the default.
const (
	DisplayTable           = "table"
	DisplayTablePrometheus = "table_prometheus"

	DefaultDisplay = DisplayTablePrometheus
)

// ModelCodes maps logical model names to the provider's internal product
// codes.
var ModelCodes = map[string]string{
	"hrdps":             "hrdps_1km_west",
	"hrdps_continental": "hrdps_continental",
	"rdps":              "rdps_10km",
	"gdps":              "gem_glb_15km",
	"geps":              "geps_0p5_raw",
	"rap":               "rap_awp",
	"nam":               "nam_awphys",
	"sref":              "sref_pgrb",
	"gfs":               "gfs_pgrb2",
	"gfs_uv_index":      "gfs_uv",
	"short_meteocode":   "meteocode",
	"ext_meteocode":     "meteocode",
}

// TitleCodes maps the meteocode products to the bulletin title the
// provider additionally requires for them.
var TitleCodes = map[string]string{
	"short_meteocode": "FPVR14",
	"ext_meteocode":   "FPVR54",
}

// Timezones is the provider's supported zone list (Canada-specific).
var Timezones = []string{
	"America/Vancouver", "America/Edmonton", "America/Regina", "America/Winnipeg",
	"America/Toronto", "America/Montreal", "America/St_Johns", "America/Halifax",
	"America/Goose_Bay", "America/Whitehorse", "America/Yellowknife", "America/Rankin_Inlet",
	"America/Iqaluit", "America/Cambridge_Bay", "America/Coral_Harbour",
}

// DisplayModes lists the accepted display values.
var DisplayModes = []string{DisplayTable, DisplayTablePrometheus}

// ModelNames returns the supported logical model names, sorted.
func ModelNames() []string {
	names := make([]string, 0, len(ModelCodes))
	for name := range ModelCodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithDefaults returns req with the default display mode filled in when
// unset. The CLI always supplies a display; this covers library callers.
func WithDefaults(req models.Request) models.Request {
	if req.Display == "" {
		req.Display = DefaultDisplay
	}
	return req
}

// Validate checks req against the provider's accepted vocabulary. It has
// no side effects and must pass before any network call is made, so bad
// input never costs a request. Latitude and longitude are float64 on the
// Request itself; their numeric check happens when the CLI parses them.
func Validate(req models.Request) error {
	if !strings.HasSuffix(req.CSVPath, ".csv") {
		return &InvalidArgumentError{
			Param: "csv_path",
			Hint:  fmt.Sprintf("%q must be a path to a csv file, including a .csv extension", req.CSVPath),
		}
	}
	if _, ok := ModelCodes[req.Model]; !ok {
		return &InvalidArgumentError{
			Param: "model",
			Hint:  fmt.Sprintf("%q must be one of %v", req.Model, ModelNames()),
		}
	}
	if !contains(Timezones, req.Timezone) {
		return &InvalidArgumentError{
			Param: "timezone",
			Hint:  fmt.Sprintf("%q must be one of %v", req.Timezone, Timezones),
		}
	}
	if !contains(DisplayModes, req.Display) {
		return &InvalidArgumentError{
			Param: "display",
			Hint:  fmt.Sprintf("%q must be one of %v", req.Display, DisplayModes),
		}
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
