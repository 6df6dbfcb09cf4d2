// Command lookup runs one vehicle query and prints the outcome as text.
//
//	lookup toyota corolla 2015
//	lookup -catalog vehicles.json land rover
//	lookup -nats nats://localhost:4222 honda civic
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/nats-io/nats.go"

	"vehicle-lookup-api/internal/catalog"
	"vehicle-lookup-api/internal/messaging"
	"vehicle-lookup-api/internal/model"
	"vehicle-lookup-api/internal/service"
)

func main() {
	var (
		catalogFile = flag.String("catalog", "", "JSON catalog file; empty uses the embedded catalog")
		natsURL     = flag.String("nats", "", "Ask a running server over NATS instead of searching locally")
		subject     = flag.String("subject", "vehicles.lookup", "NATS lookup subject")
		contact     = flag.String("contact", os.Getenv("SUPPORT_CONTACT"), "Support contact shown when nothing matches")
		verbose     = flag.Bool("v", false, "Log to stderr")
	)
	flag.Parse()

	logOut := io.Discard
	if *verbose {
		logOut = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logOut, nil))

	query := strings.Join(flag.Args(), " ")
	ctx := context.Background()

	var (
		resp *model.SearchResponse
		err  error
	)
	if *natsURL != "" {
		resp, err = remoteLookup(ctx, *natsURL, *subject, query)
	} else {
		resp, err = localLookup(ctx, *catalogFile, *contact, logger, query)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err := service.WriteText(os.Stdout, resp); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if resp.Status != model.StatusFound {
		os.Exit(2)
	}
}

func localLookup(ctx context.Context, file, contact string, logger *slog.Logger, query string) (*model.SearchResponse, error) {
	var src catalog.Source = catalog.EmbeddedSource{}
	if file != "" {
		src = catalog.FileSource{Path: file}
	}

	vehicles, err := catalog.Load(ctx, src, logger)
	if err != nil {
		return nil, err
	}

	return service.NewLookupService(vehicles, logger, contact).Search(ctx, query), nil
}

func remoteLookup(ctx context.Context, url, subject, query string) (*model.SearchResponse, error) {
	nc, err := nats.Connect(url, nats.Name("vehicle-lookup-cli"))
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}
	defer nc.Close()

	return messaging.Lookup(ctx, nc, subject, query)
}
