// Command tilecompile drives the tile compiler directly from a JSON file of
// business records, without standing up PocketBase. It mirrors the original
// system's one-binary-per-operation lambda layout
// (original_source/cdk/lambda/map-api/src/bin/get-tile.rs), folded into one
// offline CLI subcommand for this service.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/paulmach/orb"

	"barkmap/entities"
	"barkmap/internal/tilegrid"
	"barkmap/internal/vectortile"
)

// recordInput is the JSON shape one entry in the --records file takes.
type recordInput struct {
	ID           string  `json:"id"`
	DogID        string  `json:"dogId,omitempty"`
	BusinessType string  `json:"businessType"`
	Longitude    float64 `json:"longitude"`
	Latitude     float64 `json:"latitude"`
	Timestamp    int64   `json:"timestamp"`
}

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var recordsPath string
	var z, x, y int
	var outPath string

	root := &cobra.Command{
		Use:   "tilecompile",
		Short: "Compile a Mapbox Vector Tile from a JSON file of business records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(recordsPath, z, x, y, outPath)
		},
	}
	root.Flags().StringVar(&recordsPath, "records", "", "path to a JSON array of business records (required)")
	root.Flags().IntVar(&z, "z", 0, "tile zoom level")
	root.Flags().IntVar(&x, "x", 0, "tile x coordinate")
	root.Flags().IntVar(&y, "y", 0, "tile y coordinate")
	root.Flags().StringVar(&outPath, "out", "", "write the tile bytes here instead of stdout")
	root.MarkFlagRequired("records")

	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("tilecompile failed")
	}
}

func run(recordsPath string, z, x, y int, outPath string) error {
	raw, err := os.ReadFile(recordsPath)
	if err != nil {
		return fmt.Errorf("read records file: %w", err)
	}

	var inputs []recordInput
	if err := json.Unmarshal(raw, &inputs); err != nil {
		return fmt.Errorf("parse records file: %w", err)
	}

	buf := vectortile.NewBuffer(tilegrid.Coordinate{Z: uint32(z), X: uint32(x), Y: uint32(y)})

	skipped := 0
	for _, in := range inputs {
		record := entities.BusinessRecord{
			ID:           in.ID,
			DogID:        in.DogID,
			BusinessType: vectortile.BusinessType(in.BusinessType),
			Location:     orb.Point{in.Longitude, in.Latitude},
			Timestamp:    time.Unix(in.Timestamp, 0).UTC(),
		}

		switch err := buf.Append(record.ToVectortileRecord()); err {
		case nil:
		case vectortile.ErrOutsideOfTile:
			skipped++
		default:
			return fmt.Errorf("record %s: %w", in.ID, err)
		}
	}

	log.Info().Int("z", z).Int("x", x).Int("y", y).Int("records", len(inputs)).Int("skipped", skipped).Msg("tile compiled")

	data := vectortile.Marshal(buf.Finalize())
	if outPath == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(outPath, data, 0o644)
}
