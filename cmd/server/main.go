// @title         SmartHire Admin
// @version       1.0
// @description   Консоль администратора SmartHire: заявки, кандидаты, вакансии и отчёты по интервью.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name smarthire_session
// @description Сессионная cookie, выдаётся после входа на странице логина.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "smarthire-admin",
	Short: "SmartHire admin console",
	Long:  "Server-rendered admin console over the SmartHire recruitment REST API.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
