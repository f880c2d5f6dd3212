// Package main provides a CLI for the WiFiQ ticketing API. It wires
// the configured HTTP client and the session, dashboard, and ticket
// stores, and maps one action flag to one store operation.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/rafiaprilian/wifiq-client/internal/client"
	"github.com/rafiaprilian/wifiq-client/internal/config"
	"github.com/rafiaprilian/wifiq-client/internal/credentials"
	"github.com/rafiaprilian/wifiq-client/internal/models"
	"github.com/rafiaprilian/wifiq-client/internal/store"
	"github.com/rafiaprilian/wifiq-client/pkg/logger"
)

func main() {
	var (
		action   = flag.String("action", "", "Action to perform: login, register, me, logout, stats, tickets, ticket, create, reply, status, delete")
		email    = flag.String("email", "", "Account email for login/register")
		password = flag.String("password", "", "Account password for login/register")
		name     = flag.String("name", "", "Account name for register")
		code     = flag.String("code", "", "Ticket code for ticket/reply/status/delete")
		title    = flag.String("title", "", "Ticket title for create")
		body     = flag.String("body", "", "Ticket description or reply content")
		priority = flag.String("priority", "", "Ticket priority for create")
		status   = flag.String("status", "", "New ticket status, or a list filter for -action tickets")
		page     = flag.Int("page", 0, "Page number for tickets listing")
		perPage  = flag.Int("per-page", 0, "Page size for tickets listing")
		search   = flag.String("search", "", "Search filter for tickets listing")
	)
	flag.Parse()

	// Local .env is optional; real environment always wins.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	creds := credentials.NewFileStore(cfg.TokenPath(), log)
	api := client.New(cfg.API.BaseURL, cfg.API.StorageBaseURL, cfg.API.Timeout, creds, log)

	nav := store.NavigatorFunc(func(route store.Route) {
		log.WithField("route", string(route)).Debug("Navigation requested")
	})
	session := store.NewSessionStore(api, creds, nav, log)
	dashboard := store.NewDashboardStore(api, log)
	tickets := store.NewTicketStore(api, nav, log)

	ctx := context.Background()

	switch *action {
	case "login":
		err = session.Login(ctx, models.LoginRequest{Email: *email, Password: *password})
		exitOnStoreError(err, session.Error())
		printSignedIn(session.User())
	case "register":
		err = session.Register(ctx, models.RegisterRequest{
			Name:                 *name,
			Email:                *email,
			Password:             *password,
			PasswordConfirmation: *password,
		})
		exitOnStoreError(err, session.Error())
		printSignedIn(session.User())
	case "me":
		session.CheckAuth(ctx)
		if session.User() == nil {
			fmt.Fprintln(os.Stderr, "Not authenticated")
			os.Exit(1)
		}
		printJSON(session.User())
	case "logout":
		err = session.Logout(ctx)
		exitOnStoreError(err, session.Error())
		fmt.Println("Logged out")
	case "stats":
		err = dashboard.FetchStatistics(ctx)
		exitOnStoreError(err, dashboard.Error())
		printJSON(dashboard.Statistics())
	case "tickets":
		err = tickets.FetchTickets(ctx, models.TicketListParams{
			Page:     *page,
			PerPage:  *perPage,
			Status:   *status,
			Priority: *priority,
			Search:   *search,
		})
		exitOnStoreError(err, tickets.Error())
		printJSON(struct {
			Tickets    []models.Ticket   `json:"tickets"`
			Pagination models.Pagination `json:"pagination"`
		}{tickets.Tickets(), tickets.Pagination()})
	case "ticket":
		requireFlag(*code, "-code")
		ticket, fetchErr := tickets.FetchTicket(ctx, *code)
		exitOnStoreError(fetchErr, tickets.Error())
		printJSON(ticket)
		if ticket.AttachmentPath != "" {
			fmt.Printf("Attachment: %s\n", api.StorageURL(ticket.AttachmentPath))
		}
	case "create":
		requireFlag(*title, "-title")
		err = tickets.CreateTicket(ctx, models.CreateTicketRequest{
			Title:       *title,
			Description: *body,
			Priority:    *priority,
		})
		exitOnStoreError(err, tickets.Error())
		fmt.Println(tickets.Success())
	case "reply":
		requireFlag(*code, "-code")
		reply, replyErr := tickets.CreateTicketReply(ctx, *code, models.TicketReplyRequest{Content: *body})
		exitOnStoreError(replyErr, tickets.Error())
		printJSON(reply)
	case "status":
		requireFlag(*code, "-code")
		requireFlag(*status, "-status")
		ticket, statusErr := tickets.UpdateTicketStatus(ctx, *code, models.UpdateStatusRequest{Status: *status})
		exitOnStoreError(statusErr, tickets.Error())
		printJSON(ticket)
	case "delete":
		requireFlag(*code, "-code")
		err = tickets.DeleteTicket(ctx, *code)
		exitOnStoreError(err, tickets.Error())
		fmt.Println(tickets.Success())
	case "":
		fmt.Fprintln(os.Stderr, "Please specify -action")
		flag.Usage()
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "Unknown action: %s\n", *action)
		os.Exit(1)
	}
}

// exitOnStoreError prints the store's normalized message when an
// action fails. The raw error is already logged by the client.
func exitOnStoreError(err error, message string) {
	if err == nil {
		return
	}
	if message == "" {
		message = err.Error()
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	os.Exit(1)
}

// printSignedIn reports the authenticated identity. The user can be
// nil when the token was stored but the follow-up session check failed.
func printSignedIn(user *models.User) {
	if user == nil {
		fmt.Println("Signed in, but the session check failed; run -action me to retry")
		return
	}
	fmt.Printf("Signed in as %s (%s)\n", user.Name, user.Role)
}

func requireFlag(value, name string) {
	if value == "" {
		fmt.Fprintf(os.Stderr, "%s is required for this action\n", name)
		os.Exit(1)
	}
}

func printJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
