package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"hotels_merge/internal/adapters/observability"
	"hotels_merge/internal/adapters/suppliers"
	"hotels_merge/internal/app"
	"hotels_merge/internal/shared"
)

// Usage: hotels <hotel_ids> <destination_ids>
// Each argument is a comma-delimited list; an empty list or "none" matches
// everything. The filtered merged set is written to stdout as indented JSON.
func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <hotel_ids> <destination_ids>\n", os.Args[0])
		os.Exit(2)
	}

	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	svc := app.NewAggregateService(suppliers.New(cfg.FetchRPS), suppliers.Registry(cfg.SupplierBase))
	cat, err := svc.Snapshot(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("supplier fetch failed")
	}

	hotels := cat.Find(app.SetOf(splitArg(os.Args[1])), app.SetOf(splitArg(os.Args[2])))

	out, err := json.MarshalIndent(hotels, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("encode result failed")
	}
	fmt.Println(string(out))
}

func splitArg(v string) []string {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, "none") {
		return nil
	}
	return strings.Split(v, ",")
}
