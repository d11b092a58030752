package valueobjects

// Format describes the physical or digital medium of a resource.
type Format string

const (
	FormatBook    Format = "BOOK"
	FormatDVD     Format = "DVD"
	FormatCD      Format = "CD"
	FormatDigital Format = "DIGITAL"
	FormatSheet   Format = "SHEET"
	FormatKit     Format = "KIT"
	FormatOther   Format = "OTHER"
)

var formats = []Format{
	FormatBook,
	FormatDVD,
	FormatCD,
	FormatDigital,
	FormatSheet,
	FormatKit,
	FormatOther,
}

func (f Format) IsValid() bool {
	for _, v := range formats {
		if v == f {
			return true
		}
	}
	return false
}

func (f Format) String() string {
	return string(f)
}

// Formats returns all valid formats.
func Formats() []Format {
	return formats
}
