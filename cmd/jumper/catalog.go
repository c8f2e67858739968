package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubble-jump/internal/config"
	"github.com/vovakirdan/bubble-jump/internal/shop"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List market items",
	Long: `Shows the decorations that can be unlocked in the market.
An item is unlocked once the run score reaches its price.`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadJumper(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cat, err := shop.NewCatalog(cfg.Shop.Items)
	if err != nil {
		return err
	}

	if cat.Len() == 0 {
		fmt.Println("The market is empty.")
		return nil
	}

	maxIDLen := 2 // "ID" header
	for _, it := range cat.Items() {
		if len(it.ID) > maxIDLen {
			maxIDLen = len(it.ID)
		}
	}

	fmt.Println("Market items:")
	fmt.Println()
	fmt.Printf("  %-*s  %-5s  %-10s  %s\n", maxIDLen, "ID", "Glyph", "Name", "Price")
	fmt.Printf("  %-*s  %-5s  %-10s  %s\n", maxIDLen, "--", "-----", "----", "-----")

	for _, it := range cat.Items() {
		fmt.Printf("  %-*s  %-5c  %-10s  %dP\n", maxIDLen, it.ID, it.Glyph, it.Name, it.Price)
	}
	return nil
}
