package currency

import (
	"strconv"
	"strings"

	"github.com/GoblinLedger/wowapi/pkg/blizzard"
)

// DefaultTemplate renders 7540984 as "754g 9s 84c"
const DefaultTemplate = "{gold}g {silver}s {copper}c"

/*
exchange rates, in copper
*/
const (
	CopperPerGold   = 10000
	CopperPerSilver = 100
)

// Amount is a copper amount broken down into gold, silver and leftover copper
type Amount struct {
	Gold   int64
	Silver int64
	Copper int64
}

// Total converts back to copper
func (a Amount) Total() int64 {
	return a.Gold*CopperPerGold + a.Silver*CopperPerSilver + a.Copper
}

func (a Amount) String() string {
	return a.Format(DefaultTemplate)
}

// Format substitutes {gold}, {silver} and {copper} (or {major}, {minor} and {fractional}) into template
func (a Amount) Format(template string) string {
	gold := strconv.FormatInt(a.Gold, 10)
	silver := strconv.FormatInt(a.Silver, 10)
	copper := strconv.FormatInt(a.Copper, 10)

	return strings.NewReplacer(
		"{gold}", gold,
		"{silver}", silver,
		"{copper}", copper,
		"{major}", gold,
		"{minor}", silver,
		"{fractional}", copper,
	).Replace(template)
}

// Convert breaks a copper amount down into gold, silver and copper
func Convert(copper int64) (Amount, error) {
	if copper < 0 {
		return Amount{}, blizzard.NewValidationError("copper", copper, "currency amounts cannot be negative")
	}

	return Amount{
		Gold:   copper / CopperPerGold,
		Silver: copper % CopperPerGold / CopperPerSilver,
		Copper: copper % CopperPerSilver,
	}, nil
}

// Format converts copper and renders it with template, DefaultTemplate when blank
func Format(copper int64, template string) (string, error) {
	a, err := Convert(copper)
	if err != nil {
		return "", err
	}

	if template == "" {
		template = DefaultTemplate
	}

	return a.Format(template), nil
}
