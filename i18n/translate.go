// Package i18n turns message keys into user facing text. Callers treat the
// result as opaque; no logic depends on message wording.
package i18n

import (
	"sort"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/text/language"
)

// Translator looks up the message for key and fills in substitutions.
// Substitution names may be given with or without the leading '$'.
type Translator interface {
	Translate(key string, subs map[string]string) string
}

// Message keys used by the validators.
const (
	KeyGasLimitLow         = "ERROR_GAS_LIMIT_LOW"
	KeyGasLimitHigh        = "ERROR_GAS_LIMIT_HIGH"
	KeyGasPriceHigh        = "ERROR_GAS_PRICE_HIGH"
	KeyDataTooLarge        = "ERROR_DATA_TOO_LARGE"
	KeyInsufficientGas     = "ERROR_INSUFFICIENT_GAS"
	KeyInsufficientBalance = "ERROR_INSUFFICIENT_BALANCE"
	KeyInvalidAddress      = "ERROR_INVALID_ADDRESS"
)

var english = map[string]string{
	KeyGasLimitLow:         "Gas limit must be at least $limit.",
	KeyGasLimitHigh:        "Gas limit exceeds the maximum of $limit.",
	KeyGasPriceHigh:        "Gas price exceeds the maximum of $price wei.",
	KeyDataTooLarge:        "Transaction data is $size, more than the allowed $limit.",
	KeyInsufficientGas:     "Not enough gas supplied. At least $gas is required.",
	KeyInsufficientBalance: "Insufficient balance. $cost wei is required.",
	KeyInvalidAddress:      "Please enter a valid address.",
}

var german = map[string]string{
	KeyGasLimitLow:         "Das Gaslimit muss mindestens $limit betragen.",
	KeyGasLimitHigh:        "Das Gaslimit überschreitet das Maximum von $limit.",
	KeyGasPriceHigh:        "Der Gaspreis überschreitet das Maximum von $price Wei.",
	KeyDataTooLarge:        "Die Transaktionsdaten sind $size groß, erlaubt sind $limit.",
	KeyInsufficientGas:     "Nicht genug Gas angegeben. Mindestens $gas wird benötigt.",
	KeyInsufficientBalance: "Unzureichendes Guthaben. $cost Wei werden benötigt.",
	KeyInvalidAddress:      "Bitte geben Sie eine gültige Adresse ein.",
}

// Catalog holds the messages of every supported language. The first
// language is the fallback for keys missing elsewhere.
type Catalog struct {
	tags     []language.Tag
	messages []map[string]string
	matcher  language.Matcher
}

// NewCatalog returns the built-in catalog.
func NewCatalog() *Catalog {
	tags := []language.Tag{language.English, language.German}
	return &Catalog{
		tags:     tags,
		messages: []map[string]string{english, german},
		matcher:  language.NewMatcher(tags),
	}
}

// Keys lists the message keys of the fallback language in sorted order.
func (c *Catalog) Keys() []string {
	keys := maps.Keys(c.messages[0])
	slices.Sort(keys)
	return keys
}

// Languages returns the supported language tags.
func (c *Catalog) Languages() []language.Tag {
	return slices.Clone(c.tags)
}

// Localizer is a Translator bound to one language of a Catalog.
type Localizer struct {
	catalog *Catalog
	index   int
	tag     language.Tag
}

// Localizer returns a translator for the best match of an Accept-Language
// style preference list such as "de-CH,de;q=0.9,en;q=0.5". Unparseable or
// unsupported preferences fall back to the first language.
func (c *Catalog) Localizer(accept string) *Localizer {
	prefs, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(prefs) == 0 {
		return &Localizer{catalog: c, tag: c.tags[0]}
	}
	_, index, conf := c.matcher.Match(prefs...)
	if conf == language.No {
		index = 0
	}
	return &Localizer{catalog: c, index: index, tag: c.tags[index]}
}

// Language reports the language the localizer translates into.
func (l *Localizer) Language() language.Tag { return l.tag }

// Translate implements Translator. Unknown keys are returned unchanged.
func (l *Localizer) Translate(key string, subs map[string]string) string {
	msg, ok := l.catalog.messages[l.index][key]
	if !ok {
		if msg, ok = l.catalog.messages[0][key]; !ok {
			return key
		}
	}
	return substitute(msg, subs)
}

func substitute(msg string, subs map[string]string) string {
	if len(subs) == 0 {
		return msg
	}
	// Longest names first so "$limitMax" is not clobbered by "$limit".
	names := maps.Keys(subs)
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })
	pairs := make([]string, 0, 2*len(names))
	for _, name := range names {
		placeholder := name
		if !strings.HasPrefix(placeholder, "$") {
			placeholder = "$" + placeholder
		}
		pairs = append(pairs, placeholder, subs[name])
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var defaultLocalizer = NewCatalog().Localizer("en")

// Default returns the English translator.
func Default() Translator { return defaultLocalizer }
