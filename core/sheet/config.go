package sheet

// Config holds configuration for the spreadsheet source.
type Config struct {
	// Path is the spreadsheet file (.xlsx, or .csv for a flat source).
	Path string `mapstructure:"path" default:""`

	// Sheet selects the worksheet by name. Empty means the first sheet.
	// Ignored for csv sources.
	Sheet string `mapstructure:"sheet" default:""`

	// Column selects the application-name column: a header cell value when
	// HasHeader is set, otherwise a 1-based column number.
	Column string `mapstructure:"column" default:"Application Name"`

	// HasHeader marks the first row as a header row.
	HasHeader bool `mapstructure:"has_header" default:"true"`
}
