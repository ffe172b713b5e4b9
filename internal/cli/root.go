// Package cli implements productctl, which runs the product registration
// flow in-process against a fresh in-memory registry.
package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/kahvecikaan/product-registry/internal/adapter"
	"github.com/kahvecikaan/product-registry/internal/repository"
	"github.com/kahvecikaan/product-registry/internal/service"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "productctl",
		Short:         "Register products against an in-memory registry",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log output level [trace, debug, info, warn, error]")

	newService := func(cmd *cobra.Command) service.ProductService {
		return newProductService(cmd.ErrOrStderr(), logLevel)
	}
	cmd.AddCommand(newAddCmd(newService))
	cmd.AddCommand(newImportCmd(newService))
	return cmd
}

func newProductService(w io.Writer, level string) service.ProductService {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "productctl",
		Level:  hclog.LevelFromString(level),
		Output: w,
	})
	repo := repository.NewMemoryProductRepository()
	return service.NewProductService(adapter.NewProductAdapter(repo), nil, logger.Named("product-service"))
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
