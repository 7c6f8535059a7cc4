package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/srgjo27/seat_reservation/internal/adapter/render"
	"github.com/srgjo27/seat_reservation/internal/adapter/repository/memory"
	"github.com/srgjo27/seat_reservation/internal/core/domain"
	"github.com/srgjo27/seat_reservation/internal/core/services"
	"github.com/srgjo27/seat_reservation/internal/platform/config"
	"github.com/srgjo27/seat_reservation/internal/platform/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		log.Fatalf("demo: %v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var envFile string
	var sessionID, sessionTime, logLevel string
	var plain bool

	flagSet := pflag.NewFlagSet("demo", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&envFile, "env-file", ".env", "optional dotenv file with SESSION_ID, SESSION_TIME, LOG_LEVEL")
	flagSet.StringVar(&sessionID, "session", "", "session id (overrides SESSION_ID)")
	flagSet.StringVar(&sessionTime, "time", "", "session time label (overrides SESSION_TIME)")
	flagSet.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")
	flagSet.BoolVar(&plain, "plain", false, "disable colored output")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if flagSet.Changed("session") {
		cfg.SessionID = sessionID
	}
	if flagSet.Changed("time") {
		cfg.SessionTime = sessionTime
	}
	if flagSet.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if plain {
		cfg.Plain = true
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.New(stderr, level)

	session := memory.NewSession(cfg.SessionID, cfg.SessionTime)
	svc := services.NewBookingService(session, services.WithLogger(logger))

	d := &demo{out: stdout, session: session, svc: svc, r: render.New(cfg.Plain)}
	return d.run()
}

type demo struct {
	out     io.Writer
	session *memory.Session
	svc     *services.BookingService
	r       *render.Renderer
	err     error
}

func (d *demo) run() error {
	ivan := domain.NewUser("ivan")
	maria := domain.NewUser("maria")

	fmt.Fprintln(d.out, "seat reservation demo")
	d.section("initial state")
	d.show()

	d.section("reserve")
	d.apply(d.svc.ReserveSeat("A1", ivan))
	d.apply(d.svc.ReserveSeat("A2", maria))

	d.section("buy")
	d.apply(d.svc.BuyTicket("A1", ivan))

	d.section("undo last")
	entry, err := d.svc.UndoLast()
	if err != nil {
		fmt.Fprintf(d.out, "failed: %v\n", err)
	} else {
		fmt.Fprintln(d.out, render.UndoMessage(entry))
	}
	d.show()

	d.section("change seat")
	d.apply(d.svc.ChangeSeat("A2", "A3", maria))

	d.section("cancel reservation")
	d.apply(d.svc.CancelReservation("A3", maria))

	d.section("errors")
	d.apply(d.svc.BuyTicket("A5", ivan))
	d.apply(d.svc.ReserveSeat("A1", maria))

	fmt.Fprintln(d.out, "\nfinal state:")
	d.show()
	return d.err
}

// show writes the current layout, keeping the first write error for run.
func (d *demo) show() {
	if err := d.r.Layout(d.out, d.session.ID(), d.session.Time(), d.session.Seats()); err != nil && d.err == nil {
		d.err = err
	}
}

func (d *demo) section(title string) {
	fmt.Fprintf(d.out, "\n--- %s ---\n", title)
}

// apply prints the outcome of an operation followed by the current layout.
func (d *demo) apply(err error) {
	if err != nil {
		fmt.Fprintf(d.out, "failed: %v\n", err)
		return
	}

	history := d.svc.History()
	fmt.Fprintln(d.out, render.Entry(history[len(history)-1]))
	d.show()
}
