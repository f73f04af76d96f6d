package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Catalog commands",
	}

	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameUpdateCmd())
	cmd.AddCommand(newGameDeleteCmd())

	return cmd
}

func newGameListCmd() *cobra.Command {
	var search, platform, category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog games",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if search != "" {
				q.Set("search", search)
			}
			if platform != "" {
				q.Set("platform", platform)
			}
			if category != "" {
				q.Set("category", category)
			}

			path := "/games"
			if len(q) > 0 {
				path += "?" + q.Encode()
			}

			var result []GameResult
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if len(result) == 0 {
				out.PrintMessage("No games found")
				return nil
			}
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Substring match on title/description")
	cmd.Flags().StringVar(&platform, "platform", "", "Exact platform match")
	cmd.Flags().StringVar(&category, "category", "", "Substring match on category")

	return cmd
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameResult
			if err := client.Get("/games/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameCreateCmd() *cobra.Command {
	var title, platform, description, category string
	var price float64
	var images []string
	var outOfStock bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a game to the catalog (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"title":    title,
				"platform": platform,
				"price":    price,
				"in_stock": !outOfStock,
			}
			if description != "" {
				req["description"] = description
			}
			if category != "" {
				req["category"] = category
			}
			if len(images) > 0 {
				req["images"] = images
			}

			var result CreatedResult
			if err := client.Post("/admin/games", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Created game %s", result.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Game title (required)")
	cmd.Flags().StringVar(&platform, "platform", "", "Platform (required)")
	cmd.Flags().Float64Var(&price, "price", 0, "Price (required)")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&category, "category", "", "Category")
	cmd.Flags().StringSliceVar(&images, "image", nil, "Image URL (repeatable)")
	cmd.Flags().BoolVar(&outOfStock, "out-of-stock", false, "Mark as out of stock")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("platform")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func newGameUpdateCmd() *cobra.Command {
	var title, platform, description, category string
	var price float64
	var inStock bool

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a game (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only send fields that were set on the command line
			req := map[string]any{}
			if cmd.Flags().Changed("title") {
				req["title"] = title
			}
			if cmd.Flags().Changed("platform") {
				req["platform"] = platform
			}
			if cmd.Flags().Changed("price") {
				req["price"] = price
			}
			if cmd.Flags().Changed("description") {
				req["description"] = description
			}
			if cmd.Flags().Changed("category") {
				req["category"] = category
			}
			if cmd.Flags().Changed("in-stock") {
				req["in_stock"] = inStock
			}

			var result UpdatedResult
			if err := client.Put("/admin/games/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if result.Updated {
				out.PrintMessage("Updated")
			} else {
				out.PrintMessage("Nothing to update")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Game title")
	cmd.Flags().StringVar(&platform, "platform", "", "Platform")
	cmd.Flags().Float64Var(&price, "price", 0, "Price")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&category, "category", "", "Category")
	cmd.Flags().BoolVar(&inStock, "in-stock", true, "In stock")

	return cmd
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a game (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result DeletedResult
			if err := client.Delete("/admin/games/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Deleted")
			return nil
		},
	}
}
