package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kahvecikaan/product-registry/internal/cli"
	"github.com/kahvecikaan/product-registry/internal/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := cli.NewRootCmdForTest()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeCatalogue(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalogue.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestAddCmd(t *testing.T) {
	out, err := run(t, "add", "--name", "상품명", "--price", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "id: 1")
	assert.Contains(t, out, "name: 상품명")
	assert.Contains(t, out, "price: 1000")
	assert.Contains(t, out, "discount_policy: NONE")
}

func TestAddCmd_Invalid(t *testing.T) {
	_, err := run(t, "add", "--name", "", "--price", "1000")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), domain.MsgNameRequired)

	_, err = run(t, "add", "--name", "상품명", "--price", "0")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), domain.MsgPriceNotPositive)

	_, err = run(t, "add", "--name", "상품명", "--price", "10", "--policy", "HALF")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestImportCmd(t *testing.T) {
	path := writeCatalogue(t, `
products:
  - name: Latte
    price: 2450
    discount_policy: NONE
  - name: Espresso
    price: 1990
    discount_policy: none
`)

	out, err := run(t, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "id: 1")
	assert.Contains(t, out, "name: Latte")
	assert.Contains(t, out, "id: 2")
	assert.Contains(t, out, "name: Espresso")
}

func TestImportCmd_InvalidEntryRegistersNothing(t *testing.T) {
	path := writeCatalogue(t, `
products:
  - name: Latte
    price: 2450
    discount_policy: NONE
  - name: Espresso
    price: 0
    discount_policy: NONE
`)

	out, err := run(t, "import", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "product 2")
	assert.Empty(t, out)
}

func TestImportCmd_MissingFile(t *testing.T) {
	_, err := run(t, "import", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading catalogue")
}
