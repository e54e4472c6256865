// Package icons holds the Nerd Font glyphs shown in the status bar.
package icons

const (
	IconPostgres = "\ue76e"
	IconMySQL    = "\ue704"
	IconSQLite   = "\U000f01bc"
	IconGeneric  = "\U000f01bc"

	IconError   = "⚠"
)

// GetDatabaseIcon returns the glyph for a driver type
func GetDatabaseIcon(dbType string) string {
	switch dbType {
	case "postgres", "postgresql":
		return IconPostgres
	case "mysql":
		return IconMySQL
	case "sqlite":
		return IconSQLite
	default:
		return IconGeneric
	}
}
