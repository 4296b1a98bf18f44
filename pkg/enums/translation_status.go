package enums

// TranslationStatus records whether a record's language variants are populated.
type TranslationStatus string

const (
	TranslationStatusPending  TranslationStatus = "pending"
	TranslationStatusComplete TranslationStatus = "complete"
)

// String implements fmt.Stringer.
func (s TranslationStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known TranslationStatus.
func (s TranslationStatus) IsValid() bool {
	return s == TranslationStatusPending || s == TranslationStatusComplete
}
