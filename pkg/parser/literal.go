package parser

import "github.com/randalmurphal/exprlang/pkg/value"

func valueFromNumber(lexeme string) (value.Value, bool) {
	return value.NumberFromString(lexeme)
}

func boolFromLexeme(lexeme string) value.Value {
	return value.Bool(lexeme == "true" || lexeme == "True")
}

func stringValue(lexeme string) value.Value {
	return value.String(lexeme)
}
