// Command metro answers route and fare queries over a metro topology.
//
//	metro [-config metro.yml] route   FROM TO
//	metro [-config metro.yml] fewest  FROM TO
//	metro [-config metro.yml] paths   FROM TO
//	metro [-config metro.yml] nearby  FROM KM
//	metro [-config metro.yml] fare    TICKET STATION...
//	metro [-config metro.yml] transfers
//
// The config path can also come from METRO_CONFIG, read from the process
// environment or a .env file in the working directory.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/metro/config"
	"github.com/katalvlaran/metro/fare"
	"github.com/katalvlaran/metro/itinerary"
	"github.com/katalvlaran/metro/router"
)

const (
	envConfig     = "METRO_CONFIG"
	defaultConfig = "metro.yml"
)

var errUsage = errors.New("usage")

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("metro", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", envOr(envConfig, defaultConfig), "path to the YAML config")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "metro: missing command")
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(stderr, "metro:", err)
		return 1
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	r, err := router.Open(cfg, router.WithLogger(logger))
	if err != nil {
		fmt.Fprintln(stderr, "metro:", err)
		return 1
	}

	if err = dispatch(ctx, r, fs.Arg(0), fs.Args()[1:], stdout); err != nil {
		fmt.Fprintln(stderr, "metro:", err)
		if errors.Is(err, errUsage) || router.IsInvalidArgument(err) {
			return 2
		}
		return 1
	}

	return 0
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func dispatch(ctx context.Context, r *router.Router, cmd string, args []string, w io.Writer) error {
	switch cmd {
	case "route":
		if len(args) != 2 {
			return fmt.Errorf("%w: route FROM TO", errUsage)
		}
		return printPlan(r, args[0], args[1], w)

	case "fewest":
		if len(args) != 2 {
			return fmt.Errorf("%w: fewest FROM TO", errUsage)
		}
		rt, err := r.FewestStops(args[0], args[1])
		if err != nil {
			return err
		}
		if !rt.Found() {
			fmt.Fprintf(w, "no route from %s to %s\n", args[0], args[1])
			return nil
		}
		fmt.Fprintf(w, "%s (%d stops, %.2f km)\n", strings.Join(rt.Path, " -> "), rt.Path.Stops(), rt.Distance)
		return nil

	case "paths":
		if len(args) != 2 {
			return fmt.Errorf("%w: paths FROM TO", errUsage)
		}
		alts, err := r.Alternatives(ctx, args[0], args[1], r.DefaultTicket())
		if err != nil {
			return err
		}
		if len(alts) == 0 {
			fmt.Fprintf(w, "no route from %s to %s\n", args[0], args[1])
		}
		for i, a := range alts {
			fmt.Fprintf(w, "%d. %s (%d stations, %.2f km, fare %d)\n",
				i+1, strings.Join(a.Path, " -> "), len(a.Path), a.Distance, a.Fare)
		}
		return nil

	case "nearby":
		if len(args) != 2 {
			return fmt.Errorf("%w: nearby FROM KM", errUsage)
		}
		km, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("%w: nearby: distance %q: %v", errUsage, args[1], err)
		}
		res, err := r.Nearby(args[0], km)
		if err != nil {
			return err
		}
		for _, s := range res {
			fmt.Fprintf(w, "%s\t%s\t%.2f km\n", s.Station, s.Line, s.Distance)
		}
		return nil

	case "fare":
		if len(args) < 2 {
			return fmt.Errorf("%w: fare TICKET STATION...", errUsage)
		}
		t, err := fare.ParseTicketType(args[0])
		if err != nil {
			return err
		}
		f, err := r.Fare(args[1:], t)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s: %d\n", t.Description(), f)
		if t.IsPass() {
			price, _ := r.PassPrice(t)
			fmt.Fprintf(w, "pass price: %d\n", price)
		}
		return nil

	case "transfers":
		for _, s := range r.TransferStations() {
			fmt.Fprintln(w, s)
		}
		return nil

	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func printPlan(r *router.Router, from, to string, w io.Writer) error {
	p, err := r.Plan(from, to)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s\n%.2f km\n", strings.Join(p.Route.Path, " -> "), p.Route.Distance)
	fmt.Fprint(w, itinerary.Describe(p.Legs))
	for _, price := range p.Quote.Prices {
		if price.Ticket.IsPass() {
			fmt.Fprintf(w, "%-28s %3d per ride, pass %d\n", price.Ticket.Description(), price.PerRide, price.PassPrice)
			continue
		}
		fmt.Fprintf(w, "%-28s %3d\n", price.Ticket.Description(), price.PerRide)
	}

	return nil
}
