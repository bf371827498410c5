package booking

import "fmt"

type PriceCalculator interface {
	Quote(kind SessionKind, duration DurationCode, offering *Offering) Price
}

// Price is either a computed euro amount or a label taken verbatim
// from an offering description.
type Price struct {
	euros int
	label string
}

func NewEuroPrice(euros int) Price {
	return Price{euros: euros}
}

func NewLabelPrice(label string) Price {
	return Price{label: label}
}

func (p Price) Euros() (int, bool) {
	return p.euros, p.label == ""
}

func (p Price) String() string {
	if p.label != "" {
		return p.label
	}
	return fmt.Sprintf("€%d", p.euros)
}

type DefaultPriceCalculator struct {
	OneHourEuros int
	LongerEuros  int
}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{
		OneHourEuros: 30,
		LongerEuros:  50,
	}
}

func (pc *DefaultPriceCalculator) Quote(kind SessionKind, duration DurationCode, offering *Offering) Price {
	if kind == SessionKindGroup && offering != nil {
		if cost, ok := offering.DescriptionField(DescriptionCost); ok {
			return NewLabelPrice(cost)
		}
	}
	if duration == DurationOneHour {
		return NewEuroPrice(pc.OneHourEuros)
	}
	return NewEuroPrice(pc.LongerEuros)
}
