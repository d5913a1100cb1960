package reset_config

// ResetConfigCommand discards the extracted configuration tree and restores
// the defaults shipped with the binary.
type ResetConfigCommand struct{}

// Name returns the name of the command.
func (c ResetConfigCommand) Name() string {
	return "ResetConfig"
}
