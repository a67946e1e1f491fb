package payment

import (
	"fmt"
	"strings"
)

type Brand int

const (
	Visa Brand = iota
	Mastercard
	Elo
	AmericanExpress
	Hipercard
)

var brandNames = [...]string{
	Visa:            "Visa",
	Mastercard:      "Mastercard",
	Elo:             "Elo",
	AmericanExpress: "AmericanExpress",
	Hipercard:       "Hipercard",
}

func Brands() []Brand {
	return []Brand{Visa, Mastercard, Elo, AmericanExpress, Hipercard}
}

func (b Brand) String() string {
	if b < 0 || int(b) >= len(brandNames) {
		return fmt.Sprintf("Brand(%d)", int(b))
	}
	return brandNames[b]
}

func ParseBrand(name string) (Brand, error) {
	for _, b := range Brands() {
		if strings.EqualFold(b.String(), strings.TrimSpace(name)) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBrand, name)
}

func (b Brand) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Brand) UnmarshalText(text []byte) error {
	parsed, err := ParseBrand(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
