package barcode

import "unicode/utf8"

// MinLength is the shortest bank slip code accepted.
const MinLength = 10

func Validate(code string) bool {
	return Length(code) >= MinLength
}

// Length counts characters, not bytes.
func Length(code string) int {
	return utf8.RuneCountInString(code)
}
