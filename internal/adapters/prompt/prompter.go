// Package prompt implements a line-oriented console prompter for
// dependency selection.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pkgscout/pkgscout/internal/core/domain"
	"github.com/pkgscout/pkgscout/internal/engine/selection"
	"github.com/pkgscout/pkgscout/internal/ui/output"
	"github.com/pkgscout/pkgscout/internal/ui/style"
	"go.trai.ch/zerr"
)

// Console implements ports.Prompter over a reader/writer pair. It
// renders the ordered option list and returns the raw selection line;
// parsing stays with the selection engine.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a Console prompter.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask displays the options and reads one selection line. EOF with no
// input is treated as an empty selection, not an error.
func (c *Console) Ask(options []domain.Option) (string, error) {
	term := output.New(c.out)

	for i, opt := range options {
		index := style.Index.Render(fmt.Sprintf("%3d)", i+1))
		name := style.Product.Render(opt.ProductName)
		where := style.Muted.Render(fmt.Sprintf("%s (%s)", opt.PackageName, opt.DisplayPath))

		line := fmt.Sprintf("%s %s  %s", index, name, where)
		if len(opt.AvailableProducts) > 1 {
			line += " " + style.Muted.Render(
				"[products: "+strings.Join(opt.AvailableProducts, ", ")+"]")
		}
		_, _ = term.WriteString(line + "\n")
	}

	_, _ = term.WriteString(fmt.Sprintf(
		"\nSelect dependencies (e.g. 1,3 or %q for all interface products): ",
		selection.AllInterfacesKeyword))

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", zerr.Wrap(err, domain.ErrPromptFailed.Error())
	}

	return strings.TrimSpace(line), nil
}
