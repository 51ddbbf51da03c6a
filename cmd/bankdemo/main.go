package main

import (
	"bufio"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sajidmehmood/demo-bank-ledger/internal/config"
	"github.com/sajidmehmood/demo-bank-ledger/internal/events"
	"github.com/sajidmehmood/demo-bank-ledger/internal/events/kafka"
	"github.com/sajidmehmood/demo-bank-ledger/internal/export"
	"github.com/sajidmehmood/demo-bank-ledger/internal/interfaces"
	"github.com/sajidmehmood/demo-bank-ledger/internal/ledger"
	"github.com/sajidmehmood/demo-bank-ledger/internal/models"
	"github.com/sajidmehmood/demo-bank-ledger/internal/money"
	"github.com/sajidmehmood/demo-bank-ledger/internal/storage/file"
	"github.com/sajidmehmood/demo-bank-ledger/internal/storage/postgres"
	"github.com/sajidmehmood/demo-bank-ledger/internal/transfer"
	"github.com/sajidmehmood/demo-bank-ledger/internal/view"
)

func main() {
	cfg := config.Load()
	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	kv, cleanup, err := openKV(cfg)
	if err != nil {
		logger.Fatal("opening storage backend failed", zap.Error(err))
	}
	defer cleanup()

	store := ledger.NewStore(kv, logger)
	store.Initialize()

	var publisher interfaces.EventPublisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kp := kafka.NewPublisher(cfg.KafkaBrokers)
		defer kp.Close()
		publisher = kp
	}

	bus := events.NewBus()
	flow := transfer.NewFlow(store, bus, publisher, nil, logger)
	formatter := money.NewFormatter()
	saver := export.FileSaver{Dir: cfg.ExportDir}

	runLoop(store, flow, bus, formatter, saver)
}

func newLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// openKV picks the persistence backend: postgres when DATABASE_URL is
// set, otherwise the local JSON file.
func openKV(cfg config.Config) (interfaces.KVStore, func(), error) {
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, nil, err
		}
		store := postgres.NewPostgresKVStore(db)
		if err := store.EnsureSchema(); err != nil {
			db.Close()
			return nil, nil, err
		}
		return store, func() { db.Close() }, nil
	}

	store, err := file.New(cfg.DataFile)
	if err != nil {
		return nil, nil, err
	}
	return store, func() {}, nil
}

// runLoop is the single-threaded event loop: it reads one command at a
// time and runs each handler to completion before reading the next.
func runLoop(store *ledger.Store, flow *transfer.Flow, bus *events.Bus, formatter *money.Formatter, saver export.FileSaver) {
	in := bufio.NewScanner(os.Stdin)
	fmt.Println("demo bank — commands: list, search <q>, send, demo, export, recent, profile, balance, quit")

	for {
		fmt.Print("> ")
		if !in.Scan() {
			return
		}
		line := strings.TrimSpace(in.Text())
		cmd, arg, _ := strings.Cut(line, " ")

		switch cmd {
		case "list":
			printTable(store.List(0), store, formatter)
		case "search":
			printTable(store.Search(arg), store, formatter)
		case "send":
			sendTransfer(in, flow, bus)
		case "demo":
			tx := store.AddDemo()
			fmt.Printf("added %s %s %s\n", tx.Reference, formatter.Format(tx.Amount), tx.Kind)
		case "export":
			if err := export.Export(store.List(0), saver); err != nil {
				fmt.Println("export failed:", err)
			} else {
				fmt.Println("saved", export.Filename)
			}
		case "recent":
			for _, r := range flow.Recent() {
				fmt.Printf("%s  %s  %s\n", r.Reference, r.RecipientName, formatter.Format(r.Amount))
			}
		case "profile":
			p := store.Profile()
			fmt.Printf("%s  %s  %s\n", p.Name, p.Email, p.Phone)
		case "balance":
			fmt.Println(formatter.Format(store.Balance()))
		case "quit", "exit":
			return
		case "":
		default:
			fmt.Println("unknown command:", cmd)
		}
	}
}

func printTable(list []models.Transaction, store *ledger.Store, formatter *money.Formatter) {
	m := view.Project(list, store.Balance(), store.Profile(), formatter)
	for _, row := range m.Rows {
		fmt.Printf("%3d  %-16s  %16s  %s\n", row.Index, row.Reference, row.Amount, row.Kind)
	}
	fmt.Printf("%d transactions, balance %s\n", m.Count, m.Balance)
}

// sendTransfer collects the form, validates it, and drives the
// confirm/cancel interaction. Anything other than an explicit "y" at
// the prompt counts as a dismissal.
func sendTransfer(in *bufio.Scanner, flow *transfer.Flow, bus *events.Bus) {
	input := models.TransferInput{
		RecipientName: prompt(in, "recipient name"),
		Account:       prompt(in, "account number"),
		Routing:       prompt(in, "routing number"),
		BankName:      prompt(in, "bank name"),
		Amount:        prompt(in, "amount"),
		Reference:     prompt(in, "reference (blank to generate)"),
	}

	req, err := flow.Validate(input)
	if err != nil {
		fmt.Println(err)
		return
	}

	c := flow.OpenConfirmation(req, func(state transfer.State, receipt *transfer.Receipt) {
		if state == transfer.StateCommitted {
			fmt.Println(receipt.Message)
		} else {
			fmt.Println("Transfer cancelled")
		}
	})
	defer c.Close()

	fmt.Printf("send %s to %s (%s | %s) ref %s? [y/N] ",
		req.Amount.StringFixed(2), req.RecipientName, req.BankName, req.Account, req.Reference)
	if !in.Scan() {
		bus.Publish(events.TopicDismiss, nil)
		return
	}
	switch strings.ToLower(strings.TrimSpace(in.Text())) {
	case "y", "yes":
		bus.Publish(events.TopicConfirm, nil)
	case "esc":
		bus.Publish(events.TopicEscape, nil)
	default:
		bus.Publish(events.TopicCancel, nil)
	}
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Printf("%s: ", label)
	if !in.Scan() {
		return ""
	}
	return in.Text()
}
