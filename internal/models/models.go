package models

// Request holds the parameters for a single forecast fetch. It is built
// once, validated, and passed by value to each stage; nothing mutates it
// after validation.
type Request struct {
	CSVPath  string
	Model    string
	Lat      float64
	Lon      float64
	Timezone string
	Display  string

	// Zone is part of the provider's query vocabulary but has no CLI
	// argument; it stays empty unless set by a library caller.
	Zone string
}

// ForecastRow is one hourly record scraped from the provider page. Values
// are kept as the provider rendered them; no unit conversion happens here.
type ForecastRow struct {
	Hourly string
	Hour   string
	Temp   string
	RH     string
	WD     string
	WS     string
	Precip string
}

// Fields returns the row values in output column order.
func (r ForecastRow) Fields() []string {
	return []string{r.Hourly, r.Hour, r.Temp, r.RH, r.WD, r.WS, r.Precip}
}
