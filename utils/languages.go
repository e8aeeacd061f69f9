package utils

import (
	"strings"

	log "github.com/Sirupsen/logrus"
	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/lexcounsel/site-backend/consts"
	"github.com/lexcounsel/site-backend/search"
)

// English first, it is the fallback
var serverLangs = []language.Tag{
	language.English,
	language.Arabic,
}

var matcher = language.NewMatcher(serverLangs)

var whatlangoWhitelist = map[whatlanggo.Lang]bool{
	whatlanggo.Eng: true,
	whatlanggo.Arb: true,
}

var WHATLANG_TO_LOCALE = map[whatlanggo.Lang]string{
	whatlanggo.Eng: consts.LANG_ENGLISH,
	whatlanggo.Arb: consts.LANG_ARABIC,
}

func IsSupportedLocale(locale string) bool {
	return StringInSlice(locale, consts.ALL_LANGS)
}

// ResolveLocale picks the interface locale from an explicit parameter,
// then the Accept-Language header, then English.
func ResolveLocale(param string, acceptLanguage string) string {
	if l := strings.ToLower(strings.TrimSpace(param)); IsSupportedLocale(l) {
		return l
	}

	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err != nil {
			log.Debugf("ResolveLocale: bad Accept-Language %q: %s", acceptLanguage, err.Error())
		} else if len(tags) > 0 {
			tag, _, confidence := matcher.Match(tags...)
			if confidence != language.No {
				base, _ := tag.Base()
				log.Debugf("ResolveLocale: matcher found %s with confidence %v",
					display.English.Tags().Name(tag), confidence)
				if IsSupportedLocale(base.String()) {
					return base.String()
				}
			}
		}
	}

	return consts.LANG_ENGLISH
}

// DetectQueryLanguage tells which of the site languages a search query is
// written in. Anything the matcher treats as Arabic makes it Arabic.
func DetectQueryLanguage(text string, interfaceLanguage string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return fallbackLocale(interfaceLanguage)
	}

	if search.ContainsArabic(text) {
		return consts.LANG_ARABIC
	}

	info := whatlanggo.DetectWithOptions(text, whatlanggo.Options{
		Whitelist: whatlangoWhitelist,
	})
	log.Debugf("DetectQueryLanguage: whatlanggo info: %s", whatlanggo.LangToString(info.Lang))
	if l, ok := WHATLANG_TO_LOCALE[info.Lang]; ok {
		return l
	}

	return fallbackLocale(interfaceLanguage)
}

func fallbackLocale(interfaceLanguage string) string {
	if IsSupportedLocale(interfaceLanguage) {
		return interfaceLanguage
	}
	return consts.LANG_ENGLISH
}
