package cli

import (
	"net/url"

	"github.com/spf13/cobra"
)

func newOrderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Order commands",
	}

	cmd.AddCommand(newOrderCreateCmd())
	cmd.AddCommand(newOrderMineCmd())
	cmd.AddCommand(newOrderListCmd())
	cmd.AddCommand(newOrderStatusCmd())

	return cmd
}

func newOrderCreateCmd() *cobra.Command {
	var gameID, transactionID, deliveryEmail string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Place an order",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"game_id":        gameID,
				"transaction_id": transactionID,
				"delivery_email": deliveryEmail,
			}

			var result OrderPlacedResult
			if err := client.Post("/orders", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID (required)")
	cmd.Flags().StringVar(&transactionID, "txn", "", "Payment transaction ID (required)")
	cmd.Flags().StringVar(&deliveryEmail, "email", "", "Delivery email (required)")
	_ = cmd.MarkFlagRequired("game")
	_ = cmd.MarkFlagRequired("txn")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newOrderMineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "List your own orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []OrderResult
			if err := client.Get("/orders/mine", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if len(result) == 0 {
				out.PrintMessage("No orders")
				return nil
			}
			out.Print(result)
			return nil
		},
	}
}

func newOrderListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all orders (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/admin/orders"
			if status != "" {
				path += "?" + url.Values{"status": {status}}.Encode()
			}

			var result []OrderResult
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if len(result) == 0 {
				out.PrintMessage("No orders")
				return nil
			}
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (pending, verified, delivered, cancelled)")

	return cmd
}

func newOrderStatusCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "status <id>",
		Short: "Set an order's status (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"status": status}

			var result UpdatedResult
			if err := client.Post("/admin/orders/"+args[0]+"/status", req, &result); err != nil {
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

	cmd.Flags().StringVar(&status, "status", "", "New status (required)")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}
