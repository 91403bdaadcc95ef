// Package conditions maps Weatherbit numeric weather codes to the condition
// vocabulary home-automation frontends understand.
package conditions

// Condition is the display vocabulary for a resolved weather code.
type Condition string

// Conditions recognized by home-automation frontends. The zero value is not
// part of the vocabulary; unresolvable codes map to ConditionUnknown.
const (
	ConditionLightningRainy Condition = "lightning-rainy"
	ConditionLightning      Condition = "lightning"
	ConditionRainy          Condition = "rainy"
	ConditionPouring        Condition = "pouring"
	ConditionSnowy          Condition = "snowy"
	ConditionSnowyRainy     Condition = "snowy-rainy"
	ConditionHail           Condition = "hail"
	ConditionFog            Condition = "fog"
	ConditionSunny          Condition = "sunny"
	ConditionPartlyCloudy   Condition = "partlycloudy"
	ConditionCloudy         Condition = "cloudy"

	// ConditionUnknown is returned for codes outside every known range.
	ConditionUnknown Condition = ""
)

// codeRanges maps inclusive Weatherbit code ranges to conditions. The slice
// is ordered and the first matching range wins, so an overlapping later range
// can never shadow an earlier one.
var codeRanges = []struct {
	lo, hi    int
	condition Condition
}{
	{200, 202, ConditionLightningRainy}, // thunderstorm with rain
	{230, 233, ConditionLightning},      // thunderstorm with drizzle / storm
	{300, 302, ConditionRainy},          // drizzle
	{500, 501, ConditionRainy},          // light to moderate rain
	{502, 502, ConditionPouring},        // heavy rain
	{511, 511, ConditionRainy},          // freezing rain
	{520, 521, ConditionRainy},          // shower rain
	{522, 522, ConditionPouring},        // heavy shower rain
	{600, 602, ConditionSnowy},          // snow
	{610, 612, ConditionSnowyRainy},     // mix / sleet
	{621, 622, ConditionSnowy},          // snow shower
	{623, 623, ConditionHail},           // freezing drizzle / hail
	{700, 731, ConditionFog},            // mist, smoke, haze, dust
	{741, 751, ConditionFog},            // fog, freezing fog
	{800, 800, ConditionSunny},          // clear sky
	{801, 802, ConditionPartlyCloudy},   // few / scattered clouds
	{803, 804, ConditionCloudy},         // broken / overcast
	{900, 900, ConditionRainy},          // unknown precipitation
}

// FromCode resolves a Weatherbit weather code to a condition. Codes outside
// every known range resolve to ConditionUnknown.
func FromCode(code int) Condition {
	for _, r := range codeRanges {
		if code >= r.lo && code <= r.hi {
			return r.condition
		}
	}
	return ConditionUnknown
}

// Known reports whether c resolved to a member of the condition vocabulary.
func (c Condition) Known() bool {
	return c != ConditionUnknown
}

// IconName returns the suffix used in "weather-<suffix>" icon names.
// The partlycloudy condition is the one member whose icon spelling differs
// from its state value.
func (c Condition) IconName() string {
	if c == ConditionPartlyCloudy {
		return "partly-cloudy"
	}
	return string(c)
}
