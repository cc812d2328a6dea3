package main

import (
	"fmt"

	"github.com/nalkhodair/rasid/internal/cli"
	"github.com/nalkhodair/rasid/internal/model"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the spending categories",
		Long:  `List the closed set of spending categories a transaction can be classified into.`,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(cli.TitleStyle.Render("Spending categories:"))
			for _, c := range model.Categories() {
				fmt.Printf("  %s\n", c)
			}
		},
	}
}
