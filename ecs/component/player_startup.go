package component

// PlayerStartup marks a player that has not yet loaded its first track and
// restored the persisted volume. The player system removes it once done.
type PlayerStartup struct{}

var PlayerStartupComponent = NewComponent[PlayerStartup]()
