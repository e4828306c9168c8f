package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recordkit/recordkit/internal/domain/orders"
)

// PlaceOrderCmd places an order for an existing user inside a transaction.
func PlaceOrderCmd(cmd *cobra.Command, _ []string) error {
	userID, err := cmd.Flags().GetString("user-id")
	if err != nil {
		return fmt.Errorf("invalid user-id flag: %w", err)
	}
	item, err := cmd.Flags().GetString("item")
	if err != nil {
		return fmt.Errorf("invalid item flag: %w", err)
	}
	quantity, err := cmd.Flags().GetInt("quantity")
	if err != nil {
		return fmt.Errorf("invalid quantity flag: %w", err)
	}
	priceCents, err := cmd.Flags().GetInt64("price-cents")
	if err != nil {
		return fmt.Errorf("invalid price-cents flag: %w", err)
	}

	factory, err := setupFactory(cmd)
	if err != nil {
		return err
	}

	orderModel, err := orders.New(factory)
	if err != nil {
		return err
	}

	order := &orders.Order{
		UserID:     userID,
		Item:       item,
		Quantity:   quantity,
		PriceCents: priceCents,
	}
	if err := orderModel.Place(cmd.Context(), order); err != nil {
		return err
	}

	cmd.Printf("Placed order %s for user %s\n", order.ID, order.UserID)
	return nil
}

// ListOrdersCmd prints orders, optionally filtered by user.
func ListOrdersCmd(cmd *cobra.Command, _ []string) error {
	userID, err := cmd.Flags().GetString("user-id")
	if err != nil {
		return fmt.Errorf("invalid user-id flag: %w", err)
	}

	factory, err := setupFactory(cmd)
	if err != nil {
		return err
	}

	orderModel, err := orders.New(factory)
	if err != nil {
		return err
	}

	list, err := orderModel.List(cmd.Context(), userID)
	if err != nil {
		return err
	}

	for _, order := range list {
		cmd.Printf("%s\t%s\t%s x%d\t%d\t%s\n", order.ID, order.UserID, order.Item, order.Quantity, order.PriceCents, order.Status)
	}
	return nil
}

// CancelOrderCmd marks an order cancelled.
func CancelOrderCmd(cmd *cobra.Command, _ []string) error {
	orderID, err := cmd.Flags().GetString("id")
	if err != nil {
		return fmt.Errorf("invalid id flag: %w", err)
	}

	factory, err := setupFactory(cmd)
	if err != nil {
		return err
	}

	orderModel, err := orders.New(factory)
	if err != nil {
		return err
	}

	if err := orderModel.Cancel(cmd.Context(), orderID); err != nil {
		return err
	}

	cmd.Printf("Cancelled order %s\n", orderID)
	return nil
}

// InitOrderCommands registers order-related commands
func InitOrderCommands(rootCmd *cobra.Command) error {
	var placeOrderCmd = &cobra.Command{
		Use:   "place-order",
		Short: "Place an order for a user",
		RunE:  PlaceOrderCmd,
	}
	placeOrderCmd.Flags().StringP("user-id", "", "", "ID of the ordering user")
	placeOrderCmd.Flags().StringP("item", "", "", "Item being ordered")
	placeOrderCmd.Flags().IntP("quantity", "", 1, "Quantity being ordered")
	placeOrderCmd.Flags().Int64P("price-cents", "", 0, "Total price in cents")
	rootCmd.AddCommand(placeOrderCmd)

	var listOrdersCmd = &cobra.Command{
		Use:   "list-orders",
		Short: "List orders",
		RunE:  ListOrdersCmd,
	}
	listOrdersCmd.Flags().StringP("user-id", "", "", "Only list orders of this user")
	rootCmd.AddCommand(listOrdersCmd)

	var cancelOrderCmd = &cobra.Command{
		Use:   "cancel-order",
		Short: "Cancel an order by ID",
		RunE:  CancelOrderCmd,
	}
	cancelOrderCmd.Flags().StringP("id", "", "", "ID of the order to cancel")
	rootCmd.AddCommand(cancelOrderCmd)

	return nil
}
