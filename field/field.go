package field

// ID identifies a field of the result listing.
type ID string

// Definition describes one configured column of a listing.
type Definition struct {
	// ID is the UI field id, the handle the renderer and the settings
	// storage key on.
	ID ID

	// Alias is the underlying result-column alias, when the field exposes
	// one. Raw-value comparison prefers the alias because it names the
	// value as fetched; rendered comparison always uses ID.
	Alias ID
}

// rawID returns the identifier used for raw-value comparison.
func (d Definition) rawID() ID {
	if d.Alias != "" {
		return d.Alias
	}
	return d.ID
}
