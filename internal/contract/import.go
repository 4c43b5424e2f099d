package contract

// ImportRequest asks for a browser-extension storage export to be loaded
// into the local store.
type ImportRequest struct {
	Path string
}

// ImportResponse reports what the import actually changed. Items and log
// entries that already exist locally are skipped, not overwritten.
type ImportResponse struct {
	ImportedItems   int
	SkippedItems    int
	ImportedEntries int
	SkippedEntries  int
}
