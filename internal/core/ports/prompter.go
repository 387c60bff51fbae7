package ports

import "github.com/pkgscout/pkgscout/internal/core/domain"

// Prompter is the interactive boundary: it presents the ordered option
// list and collects the raw selection line. Parsing of the line is not
// the prompter's job.
//
//go:generate mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	// Ask displays the options and returns the raw input line. An
	// empty line is a valid answer meaning "nothing selected".
	Ask(options []domain.Option) (string, error)
}
