package ports

// Walker enumerates candidate package directories inside a workspace.
//
//go:generate mockgen -source=walker.go -destination=mocks/mock_walker.go -package=mocks
type Walker interface {
	// Candidates returns the directories under root (root included)
	// that contain a manifest file, skipping noise directories.
	Candidates(root string) ([]string, error)
}
