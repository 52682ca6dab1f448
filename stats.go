package growmap

type Stats struct {
	// Live entries.
	Size int

	// Current fill ceiling. The next grow fires when Size exceeds two
	// thirds of it.
	Fill int

	// Occupied positions in the active table, tombstones included.
	Slots int

	Tombstones int

	// Whether entries have moved to the big table.
	Promoted bool
}
