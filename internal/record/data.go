package record

// character classes used by the plate and phone formats
const (
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	regionChars = upperChars + digitChars
)

// EmailDomain is the domain every derived address uses.
const EmailDomain = "example.com"

// PhonePrefixes lists the French prefixes a generated number may start with.
var PhonePrefixes = []string{"06", "07", "01", "02", "03", "04", "05", "09"}
