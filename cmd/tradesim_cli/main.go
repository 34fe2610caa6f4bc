package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tradesim/tradesim_backend/internal/core/domain"
	"github.com/tradesim/tradesim_backend/internal/core/ports"
	portssvc "github.com/tradesim/tradesim_backend/internal/core/ports/services"
	"github.com/tradesim/tradesim_backend/internal/core/services"
	"github.com/tradesim/tradesim_backend/internal/platform/market"
	"github.com/tradesim/tradesim_backend/pkg/config"
)

// The console front-end drives the same account service as the HTTP API, in-process.
// It holds no business logic: every command binds input, calls the service and
// renders the outcome. A failed operation is printed, never fatal.

func main() {
	// Keep the console clean: only warnings and errors from the service layer
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	priceTable, err := market.ParsePriceTable(cfg.PriceTable)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to parse PRICE_TABLE:", err)
		os.Exit(1)
	}
	oracle := market.NewStaticOracle(priceTable)
	account := services.NewAccountService(oracle, market.SystemClock{})

	repl{account: account, oracle: oracle, in: bufio.NewScanner(os.Stdin)}.run(context.Background())
}

type repl struct {
	account portssvc.AccountSvcFacade
	oracle  ports.PriceOracle
	in      *bufio.Scanner
}

func (r repl) run(ctx context.Context) {
	fmt.Println("Welcome to TradeSim.")
	r.onboard(ctx)

	fmt.Println(`Commands: summary | holdings | history | deposit <amt> | withdraw <amt> | buy <sym> <qty> | sell <sym> <qty> | prices | reset | quit`)
	for {
		fmt.Print("> ")
		if !r.in.Scan() {
			return
		}
		fields := strings.Fields(r.in.Text())
		if len(fields) == 0 {
			continue
		}

		switch cmd := strings.ToLower(fields[0]); cmd {
		case "quit", "exit":
			return
		case "summary":
			r.printSummary(ctx)
		case "holdings":
			r.printHoldings(ctx)
		case "history":
			r.printHistory(ctx)
		case "prices":
			r.printPrices()
		case "reset":
			r.account.Reset(ctx)
			fmt.Println("Simulation reset.")
			r.onboard(ctx)
		case "deposit", "withdraw":
			if len(fields) != 2 {
				fmt.Printf("usage: %s <amount>\n", cmd)
				continue
			}
			amount, err := decimal.NewFromString(fields[1])
			if err != nil {
				fmt.Println("invalid amount:", fields[1])
				continue
			}
			if cmd == "deposit" {
				_, err = r.account.Deposit(ctx, amount)
			} else {
				_, err = r.account.Withdraw(ctx, amount)
			}
			if err != nil {
				fmt.Println("rejected:", err)
				continue
			}
			fmt.Printf("Done. Cash balance: $%s\n", r.account.Snapshot(ctx).Balance.StringFixed(2))
		case "buy", "sell":
			if len(fields) != 3 {
				fmt.Printf("usage: %s <symbol> <quantity>\n", cmd)
				continue
			}
			qty, err := strconv.ParseInt(fields[2], 10, 64)
			if err != nil {
				fmt.Println("invalid quantity:", fields[2])
				continue
			}
			var txn *domain.Transaction
			if cmd == "buy" {
				txn, err = r.account.Buy(ctx, fields[1], qty)
			} else {
				txn, err = r.account.Sell(ctx, fields[1], qty)
			}
			if err != nil {
				fmt.Println("rejected:", err)
				continue
			}
			fmt.Printf("%s %d %s @ $%s (cash delta $%s)\n",
				txn.Kind, txn.Quantity, txn.Symbol, txn.Price.StringFixed(2), txn.Amount.StringFixed(2))
		default:
			fmt.Println("unknown command:", cmd)
		}
	}
}

// onboard loops until onboarding succeeds or input ends.
func (r repl) onboard(ctx context.Context) {
	for {
		fmt.Print("Your name: ")
		if !r.in.Scan() {
			os.Exit(0)
		}
		name := r.in.Text()

		fmt.Print("Initial deposit ($): ")
		if !r.in.Scan() {
			os.Exit(0)
		}
		funding, err := decimal.NewFromString(strings.TrimSpace(r.in.Text()))
		if err != nil {
			fmt.Println("invalid amount, try again")
			continue
		}

		if _, err := r.account.Onboard(ctx, name, funding); err != nil {
			fmt.Println("rejected:", err)
			continue
		}
		fmt.Printf("Account created for %s.\n", strings.TrimSpace(name))
		return
	}
}

func (r repl) printSummary(ctx context.Context) {
	s := r.account.Summary(ctx)
	fmt.Printf("Cash balance:    $%s\n", s.Balance.StringFixed(2))
	fmt.Printf("Market value:    $%s\n", s.MarketValue.StringFixed(2))
	fmt.Printf("Total value:     $%s\n", s.TotalValue.StringFixed(2))
	fmt.Printf("Total P/L:       $%s (%s%%)\n", s.TotalPL.StringFixed(2), s.PLPercent.StringFixed(2))
	fmt.Printf("Funded capital:  $%s\n", s.FundedCapital.StringFixed(2))
}

func (r repl) printHoldings(ctx context.Context) {
	positions := r.account.Holdings(ctx)
	if len(positions) == 0 {
		fmt.Println("Your portfolio is currently empty.")
		return
	}
	fmt.Printf("%-10s %8s %12s %12s %14s %12s\n", "SYMBOL", "QTY", "AVG PRICE", "PRICE", "MKT VALUE", "P/L")
	for _, p := range positions {
		fmt.Printf("%-10s %8d %12s %12s %14s %12s\n",
			p.Symbol, p.Quantity,
			p.AvgPrice.StringFixed(2), p.CurrentPrice.StringFixed(2),
			p.MarketValue.StringFixed(2), p.UnrealizedPL.StringFixed(2))
	}
}

func (r repl) printHistory(ctx context.Context) {
	txns := r.account.Transactions(ctx)
	if len(txns) == 0 {
		fmt.Println("No transaction records found.")
		return
	}
	fmt.Printf("%-19s %-10s %-10s %8s %12s %14s %s\n", "TIMESTAMP", "KIND", "SYMBOL", "QTY", "PRICE", "AMOUNT", "STATUS")
	for _, t := range txns {
		fmt.Printf("%-19s %-10s %-10s %8d %12s %14s %s\n",
			t.Timestamp.Format(domain.TimestampLayout), t.Kind, t.Symbol,
			t.Quantity, t.Price.StringFixed(2), t.Amount.StringFixed(2), t.Status)
	}
}

func (r repl) printPrices() {
	for _, symbol := range r.oracle.Symbols() {
		fmt.Printf("%-10s $%s\n", symbol, r.oracle.Price(symbol).StringFixed(2))
	}
}
