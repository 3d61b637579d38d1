package main

import (
	"fmt"
	"os"

	"github.com/SscSPs/camp_ledger_app/internal/cli"
)

// @title Camp Ledger API
// @version 1.0
// @description Bookkeeping API for clients, booked services, expenses and monthly summaries.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
