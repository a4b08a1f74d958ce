package i18n

import "strings"

// Translator retrieves localized messages for Invalid codes. data provides
// optional parameters interpolated into the message via ${name} placeholders
// (for example, "expected" or "min").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			msg = "型が不正です (${expected} が必要です)"
		case "required":
			msg = "必須の値が不足しています"
		case "unknown_key":
			msg = "未知のキーです"
		case "arity_mismatch":
			msg = "${expected} 要素が必要ですが ${got} 要素でした"
		case "too_small":
			msg = "${value} は最小値 ${min} より小さいです"
		case "too_big":
			msg = "${value} は最大値 ${max} より大きいです"
		case "too_short":
			msg = "最小長 ${min} より短いです"
		case "too_long":
			msg = "最大長 ${max} より長いです"
		case "invalid_enum":
			msg = "\"${value}\" は ${choices} のいずれでもありません"
		case "pattern":
			msg = "パターンに一致しません"
		case "luhn":
			msg = "\"${value}\" は有効なクレジットカード番号ではありません"
		case "parse_error":
			msg = "解析エラー"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			msg = "invalid type: expected ${expected}"
		case "required":
			msg = "required value missing"
		case "unknown_key":
			msg = "unknown key"
		case "arity_mismatch":
			msg = "expected ${expected} elements, got ${got}"
		case "too_small":
			msg = "${value} is less than minimum value ${min}"
		case "too_big":
			msg = "${value} is greater than maximum value ${max}"
		case "too_short":
			msg = "shorter than minimum length ${min}"
		case "too_long":
			msg = "longer than maximum length ${max}"
		case "invalid_enum":
			msg = "\"${value}\" is not one of ${choices}"
		case "pattern":
			msg = "string does not match expected pattern"
		case "luhn":
			msg = "\"${value}\" is not a valid credit card number"
		case "parse_error":
			msg = "parse error"
		}
	}
	if msg == "" {
		return code
	}
	return interpolate(msg, data)
}

func interpolate(msg string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(msg, "${") {
		return msg
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "${"+k+"}", v)
	}
	return msg
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
