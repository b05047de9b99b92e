package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"

	"github.com/gagreene/spotwx/internal/models"
	"github.com/gagreene/spotwx/internal/spotwx"
)

var cli struct {
	CSVPath  string  `arg:"" help:"Output CSV path (must end in .csv)."`
	Model    string  `arg:"" help:"Forecast model, e.g. gfs, hrdps, rdps."`
	Lat      float64 `arg:"" help:"Latitude in decimal degrees."`
	Lon      float64 `arg:"" help:"Longitude in decimal degrees."`
	Timezone string  `arg:"" help:"Forecast timezone, e.g. America/Edmonton."`
	Display  string  `arg:"" help:"Provider display mode: table or table_prometheus."`

	BaseURL string        `env:"SPOTWX_BASE_URL" default:"https://spotwx.com/products/grib_index.php" help:"Provider endpoint override."`
	Timeout time.Duration `env:"SPOTWX_TIMEOUT" default:"30s" help:"HTTP request timeout."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("spotwx"),
		kong.Description("Fetch a SpotWX model forecast and save it as a CSV file."),
		kong.Configuration(kongdotenv.ENVFileReader, ".env"),
	)

	req := models.Request{
		CSVPath:  cli.CSVPath,
		Model:    cli.Model,
		Lat:      cli.Lat,
		Lon:      cli.Lon,
		Timezone: cli.Timezone,
		Display:  cli.Display,
	}

	// Validation runs before any network use, so bad input never costs a
	// request.
	if err := spotwx.Validate(req); err != nil {
		log.Fatalf("invalid request: %v", err)
	}

	client := spotwx.NewClient(cli.BaseURL, cli.Timeout)
	rows, err := client.Fetch(context.Background(), req)
	switch {
	case errors.Is(err, spotwx.ErrDataNotFound):
		log.Fatalf("no forecast data embedded in provider response (model %s, display %s)", req.Model, req.Display)
	case err != nil:
		log.Fatalf("fetch forecast: %v", err)
	}

	if err := spotwx.WriteCSV(req.CSVPath, rows); err != nil {
		log.Fatalf("write csv: %v", err)
	}
	log.Printf("saved %d forecast rows to %s", len(rows), req.CSVPath)
}
