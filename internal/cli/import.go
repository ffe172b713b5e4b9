package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kahvecikaan/product-registry/internal/domain"
	"github.com/kahvecikaan/product-registry/internal/service"
)

// Catalogue is the YAML document read by the import command.
type Catalogue struct {
	Products []domain.AddProductRequest `yaml:"products"`
}

type importResult struct {
	Products []*domain.Product `yaml:"products"`
}

func newImportCmd(newService func(*cobra.Command) service.ProductService) *cobra.Command {
	return &cobra.Command{
		Use:   "import <catalogue.yaml>",
		Short: "Register every product listed in a YAML catalogue",
		Long:  "Validate every entry of the catalogue, then register them in order. Nothing is registered if any entry is invalid.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogue, err := loadCatalogue(args[0])
			if err != nil {
				return err
			}

			requests := make([]domain.AddProductRequest, 0, len(catalogue.Products))
			for i, p := range catalogue.Products {
				request, err := domain.NewAddProductRequest(p.Name, p.Price, p.DiscountPolicy)
				if err != nil {
					return fmt.Errorf("product %d: %w", i+1, err)
				}
				requests = append(requests, request)
			}

			svc := newService(cmd)
			var result importResult
			for i, request := range requests {
				product, err := svc.AddProduct(cmd.Context(), request)
				if err != nil {
					return fmt.Errorf("product %d: %w", i+1, err)
				}
				result.Products = append(result.Products, product)
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(result)
		},
	}
}

func loadCatalogue(path string) (Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalogue{}, fmt.Errorf("reading catalogue: %w", err)
	}

	var c Catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalogue{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}
