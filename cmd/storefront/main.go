package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/angelmondragon/storefront/internal/gateway"
	"github.com/angelmondragon/storefront/internal/notify"
	"github.com/angelmondragon/storefront/internal/session"
	"github.com/angelmondragon/storefront/internal/storefront"
	"github.com/angelmondragon/storefront/internal/terminal"
	"github.com/angelmondragon/storefront/internal/views"
	"github.com/angelmondragon/storefront/pkg/config"
	"github.com/angelmondragon/storefront/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	stdin := bufio.NewScanner(os.Stdin)
	surface := terminal.NewSurface(os.Stdout)

	app, err := storefront.New(storefront.Params{
		Gateway:       gateway.NewClient(cfg.Client.BaseURL, gateway.WithTimeout(cfg.Client.RequestTimeout)),
		Store:         session.NewStore(),
		Surface:       surface,
		Notifier:      notify.New(surface, cfg.Client.NotifyDuration),
		Logger:        logg,
		Confirm:       stdinConfirm(stdin, os.Stdout),
		DemoEmail:     cfg.Client.DemoEmail,
		RedirectDelay: cfg.Client.CheckoutRedirect,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to assemble storefront", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// A failed bootstrap leaves the prompt running; every action that needs
	// a session user will surface its own failure.
	_ = app.Initialize(ctx)
	app.ShowTab(ctx, views.TabProducts, "productsBtn")

	runPrompt(ctx, app, stdin, os.Stdout)
}

// stdinConfirm is the blocking yes/no gate in front of checkout.
func stdinConfirm(stdin *bufio.Scanner, out *os.File) storefront.ConfirmFunc {
	return func(ctx context.Context, prompt string) bool {
		fmt.Fprintf(out, "%s [y/N]: ", prompt)
		if !stdin.Scan() {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(stdin.Text()))
		return answer == "y" || answer == "yes"
	}
}

const promptHelp = `commands:
  products | cart | orders   switch tab
  add <productId>            add one unit to the cart
  remove <itemId>            remove a cart line
  checkout                   place the order
  refresh                    reload the catalog
  help                       show this text
  quit                       exit`

func runPrompt(ctx context.Context, app *storefront.App, stdin *bufio.Scanner, out *os.File) {
	fmt.Fprintln(out, promptHelp)

	for {
		fmt.Fprint(out, "\n> ")
		if !stdin.Scan() {
			return
		}

		fields := strings.Fields(stdin.Text())
		if len(fields) == 0 {
			continue
		}

		switch cmd := strings.ToLower(fields[0]); cmd {
		case "products", "cart", "orders":
			tab, _ := views.ParseTab(cmd)
			app.ShowTab(ctx, tab, cmd+"Btn")
		case "add":
			id, ok := argID(out, fields, "add <productId>")
			if ok {
				app.AddToCart(ctx, id)
			}
		case "remove":
			id, ok := argID(out, fields, "remove <itemId>")
			if ok {
				app.RemoveFromCart(ctx, id)
			}
		case "checkout":
			app.Checkout(ctx)
		case "refresh":
			app.LoadProducts(ctx)
		case "help":
			fmt.Fprintln(out, promptHelp)
		case "quit", "exit":
			return
		default:
			fmt.Fprintf(out, "unknown command %q (try: help)\n", cmd)
		}
	}
}

func argID(out *os.File, fields []string, usage string) (int, bool) {
	if len(fields) != 2 {
		fmt.Fprintf(out, "usage: %s\n", usage)
		return 0, false
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		fmt.Fprintf(out, "usage: %s\n", usage)
		return 0, false
	}
	return id, true
}
