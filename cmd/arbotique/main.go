// Package main is the ARBotique command line: the stylist API, the catalog
// recommender and a one-shot recommendation client.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// @title ARBotique Stylist API
// @version 1.0
// @description Outfit recommendations with a built-in fallback when the recommender is unavailable

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

var rootCmd = &cobra.Command{
	Use:   "arbotique",
	Short: "ARBotique outfit recommendations",
	Long:  "ARBotique collects a user profile and style quiz, asks the recommender for outfits and falls back to built-in outfits when it is unavailable.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
