package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kahvecikaan/product-registry/internal/domain"
	"github.com/kahvecikaan/product-registry/internal/service"
)

func newAddCmd(newService func(*cobra.Command) service.ProductService) *cobra.Command {
	var (
		name   string
		price  int
		policy string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a single product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dp, err := domain.ParseDiscountPolicy(policy)
			if err != nil {
				return err
			}
			request, err := domain.NewAddProductRequest(name, price, dp)
			if err != nil {
				return err
			}

			product, err := newService(cmd).AddProduct(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("add failed: %w", err)
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(product)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Product name")
	cmd.Flags().IntVar(&price, "price", 0, "Product price, greater than zero")
	cmd.Flags().StringVar(&policy, "policy", domain.DiscountPolicyNone.String(), "Discount policy [NONE]")

	return cmd
}
