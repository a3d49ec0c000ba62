package doctree

// OrderedListType is the numbering style of an ordered list.
type OrderedListType string

// Ordered list types.
const (
	OrderedDecimal            OrderedListType = "decimal"
	OrderedDecimalLeadingZero OrderedListType = "decimal-leading-zero"
	OrderedRomanLower         OrderedListType = "lower-roman"
	OrderedRomanUpper         OrderedListType = "upper-roman"
	OrderedAlphaLower         OrderedListType = "lower-alpha"
	OrderedAlphaUpper         OrderedListType = "upper-alpha"
	OrderedAny                OrderedListType = "any"
)

// IsValid returns true if t is a known ordered list type.
func (t OrderedListType) IsValid() bool {
	switch t {
	case OrderedDecimal, OrderedDecimalLeadingZero, OrderedRomanLower, OrderedRomanUpper,
		OrderedAlphaLower, OrderedAlphaUpper, OrderedAny:
		return true
	default:
		return false
	}
}

// UnorderedListType is the bullet style of an unordered list.
type UnorderedListType string

// Unordered list types.
const (
	UnorderedDash     UnorderedListType = "dash"
	UnorderedAsterisk UnorderedListType = "asterisk"
	UnorderedPlus     UnorderedListType = "plus"
)

// IsValid returns true if t is a known unordered list type.
func (t UnorderedListType) IsValid() bool {
	switch t {
	case UnorderedDash, UnorderedAsterisk, UnorderedPlus:
		return true
	default:
		return false
	}
}
