package domain

// DefaultSkipPattern matches folder names the crawler never descends into:
// hidden and underscore-prefixed folders, and build artefacts.
const DefaultSkipPattern = `^\..*|^_.*|^src$|^build$`

// DriveSettings configures the remote tree crawler.
type DriveSettings struct {
	// RootFolderID is the folder the crawl starts from.
	RootFolderID string

	// SkipPattern is a regular expression over folder names; matching
	// folders are not descended into.
	SkipPattern string

	// CredentialsFile is the OAuth client secret JSON downloaded from Google.
	CredentialsFile string

	// TokenFile holds the authorised user token JSON.
	TokenFile string
}

// ParseSettings configures the classification pass.
type ParseSettings struct {
	// Workers is the number of concurrent classifiers.
	Workers int

	// Limit caps the number of items per run; 0 means all.
	Limit int
}

// AppSettings is the complete application configuration.
type AppSettings struct {
	// DataDir holds the SQLite database. Empty means the default location.
	DataDir string

	Drive DriveSettings
	Parse ParseSettings
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Drive: DriveSettings{
			SkipPattern: DefaultSkipPattern,
		},
		Parse: ParseSettings{
			Workers: 1,
		},
	}
}
