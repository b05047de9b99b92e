package spotwx

import (
	"strconv"
	"strings"

	"github.com/gagreene/spotwx/internal/models"
)

// DefaultBaseURL is the provider's grib index endpoint.
const DefaultBaseURL = "https://spotwx.com/products/grib_index.php"

// BuildURL maps a validated request onto the provider's query vocabulary.
// Key order is fixed (model, title, lat, lon, zone, tz, display) and
// optional keys are omitted when absent; the provider is sensitive to the
// shape of these URLs, so the output is byte-identical for identical
// inputs. Values are not URL-escaped: every accepted value is drawn from
// a fixed vocabulary that needs none.
func BuildURL(base string, req models.Request) string {
	var b strings.Builder
	b.WriteString(base)
	b.WriteString("?model=")
	b.WriteString(ModelCodes[req.Model])
	if title, ok := TitleCodes[req.Model]; ok {
		b.WriteString("&title=")
		b.WriteString(title)
	}
	b.WriteString("&lat=")
	b.WriteString(formatCoord(req.Lat))
	b.WriteString("&lon=")
	b.WriteString(formatCoord(req.Lon))
	if req.Zone != "" {
		b.WriteString("&zone=")
		b.WriteString(req.Zone)
	}
	b.WriteString("&tz=")
	b.WriteString(req.Timezone)
	b.WriteString("&display=")
	b.WriteString(req.Display)
	return b.String()
}

// formatCoord renders a coordinate with the fewest digits that survive a
// round trip, keeping a trailing .0 on whole degrees (the form the
// provider's own pages use, e.g. lat=51.0).
func formatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
